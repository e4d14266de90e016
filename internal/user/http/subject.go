package http

import (
	"github.com/gin-gonic/gin"

	authhttp "github.com/allisson/cms/internal/auth/http"
	"github.com/allisson/cms/internal/authz"
	"github.com/allisson/cms/internal/user/domain"
)

// LoadedUserSubject resolves the user loaded by LoadUser into a permission
// subject. Must run after LoadUser on the route.
func LoadedUserSubject() authhttp.SubjectResolver {
	return func(c *gin.Context) (authz.Subject, error) {
		user := LoadedUser(c)
		if user == nil {
			return authz.Subject{}, domain.ErrUserNotFound
		}
		return authz.Subject{Type: authz.SubjectUser, Record: user.AuthzRecord()}, nil
	}
}
