// Package http provides the authentication and permission gates plus the
// login/refresh/logout handlers.
package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/authz"
	userDomain "github.com/allisson/cms/internal/user/domain"
)

// principalKey is a context key type for storing the authenticated user.
type principalKey struct{}

// WithUser stores an authenticated user in the context.
// This is called by the authentication middleware after successful verification.
func WithUser(ctx context.Context, user *userDomain.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// GetUser retrieves the authenticated user from the context.
// Returns (user, true) if present, or (nil, false) for anonymous requests.
func GetUser(ctx context.Context) (*userDomain.User, bool) {
	user, ok := ctx.Value(principalKey{}).(*userDomain.User)
	return user, ok
}

// GetPrincipal returns the authorization view of the authenticated user, or
// nil for anonymous requests. Permission checks accept a nil principal.
func GetPrincipal(c *gin.Context) *authz.Principal {
	user, ok := GetUser(c.Request.Context())
	if !ok || user == nil {
		return nil
	}
	return user.Principal()
}
