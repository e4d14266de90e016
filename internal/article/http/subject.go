package http

import (
	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/article/domain"
	authhttp "github.com/allisson/cms/internal/auth/http"
	"github.com/allisson/cms/internal/authz"
)

// LoadedArticleSubject resolves the article loaded by LoadArticle into a
// permission subject. Must run after LoadArticle on the route.
func LoadedArticleSubject() authhttp.SubjectResolver {
	return func(c *gin.Context) (authz.Subject, error) {
		article := LoadedArticle(c)
		if article == nil {
			return authz.Subject{}, domain.ErrArticleNotFound
		}
		return authz.Subject{Type: authz.SubjectArticle, Record: article.AuthzRecord()}, nil
	}
}
