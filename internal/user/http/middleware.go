package http

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/httputil"
	"github.com/allisson/cms/internal/user/domain"
	"github.com/allisson/cms/internal/user/usecase"
)

// LoadUser returns a middleware that loads the user named by the :id route
// parameter. Requests for unknown users are rejected with 404 before any
// permission check runs; the loaded user doubles as the permission subject.
func LoadUser(userUseCase usecase.UseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			httputil.HandleErrorGin(c, domain.ErrUserNotFound, logger)
			c.Abort()
			return
		}

		user, err := userUseCase.GetByID(c.Request.Context(), id)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		SetLoadedUser(c, user)
		c.Next()
	}
}
