package http

import (
	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/article/domain"
)

// loadedArticleKey is the gin context key holding the article loaded by LoadArticle.
const loadedArticleKey = "cms/loaded-article"

// SetLoadedArticle stores an article in the request context.
func SetLoadedArticle(c *gin.Context, article *domain.Article) {
	c.Set(loadedArticleKey, article)
}

// LoadedArticle retrieves the article stored by LoadArticle, or nil.
func LoadedArticle(c *gin.Context) *domain.Article {
	value, exists := c.Get(loadedArticleKey)
	if !exists {
		return nil
	}
	article, ok := value.(*domain.Article)
	if !ok {
		return nil
	}
	return article
}
