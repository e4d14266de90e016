package http

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/category/domain"
	"github.com/allisson/cms/internal/category/usecase"
	"github.com/allisson/cms/internal/httputil"
)

// LoadCategory returns a middleware that loads the category named by the :id
// route parameter, rejecting unknown categories with 404.
func LoadCategory(categoryUseCase usecase.UseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			httputil.HandleErrorGin(c, domain.ErrCategoryNotFound, logger)
			c.Abort()
			return
		}

		category, err := categoryUseCase.GetByID(c.Request.Context(), id)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		SetLoadedCategory(c, category)
		c.Next()
	}
}
