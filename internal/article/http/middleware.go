package http

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/article/domain"
	"github.com/allisson/cms/internal/article/usecase"
	"github.com/allisson/cms/internal/httputil"
)

// LoadArticle returns a middleware that loads the article named by the :id
// route parameter, rejecting unknown articles with 404. The loaded article is
// the subject for ownership-scoped permission checks.
func LoadArticle(articleUseCase usecase.UseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			httputil.HandleErrorGin(c, domain.ErrArticleNotFound, logger)
			c.Abort()
			return
		}

		article, err := articleUseCase.GetByID(c.Request.Context(), id)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		SetLoadedArticle(c, article)
		c.Next()
	}
}
