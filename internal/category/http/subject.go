package http

import (
	"github.com/gin-gonic/gin"

	authhttp "github.com/allisson/cms/internal/auth/http"
	"github.com/allisson/cms/internal/authz"
	"github.com/allisson/cms/internal/category/domain"
)

// LoadedCategorySubject resolves the category loaded by LoadCategory into a
// permission subject. Must run after LoadCategory on the route.
func LoadedCategorySubject() authhttp.SubjectResolver {
	return func(c *gin.Context) (authz.Subject, error) {
		category := LoadedCategory(c)
		if category == nil {
			return authz.Subject{}, domain.ErrCategoryNotFound
		}
		return authz.Subject{Type: authz.SubjectCategory, Record: category.AuthzRecord()}, nil
	}
}
