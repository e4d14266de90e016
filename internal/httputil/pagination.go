package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPaginationLimit = 50
	maxPaginationLimit     = 100
)

// ParsePagination parses and validates the offset and limit query parameters
// used by the list endpoints. Offset defaults to 0 and limit to 50, capped at
// 100 rows per page.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultPaginationLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxPaginationLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxPaginationLimit)
	}

	return offset, limit, nil
}
