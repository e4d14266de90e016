package http

import (
	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/category/domain"
)

// loadedCategoryKey is the gin context key holding the category loaded by LoadCategory.
const loadedCategoryKey = "cms/loaded-category"

// SetLoadedCategory stores a category in the request context.
func SetLoadedCategory(c *gin.Context, category *domain.Category) {
	c.Set(loadedCategoryKey, category)
}

// LoadedCategory retrieves the category stored by LoadCategory, or nil.
func LoadedCategory(c *gin.Context) *domain.Category {
	value, exists := c.Get(loadedCategoryKey)
	if !exists {
		return nil
	}
	category, ok := value.(*domain.Category)
	if !ok {
		return nil
	}
	return category
}
