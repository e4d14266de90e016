package http

import (
	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/user/domain"
)

// loadedUserKey is the gin context key holding the user loaded by LoadUser.
const loadedUserKey = "cms/loaded-user"

// SetLoadedUser stores a user in the request context.
func SetLoadedUser(c *gin.Context, user *domain.User) {
	c.Set(loadedUserKey, user)
}

// LoadedUser retrieves the user stored by LoadUser, or nil.
func LoadedUser(c *gin.Context) *domain.User {
	value, exists := c.Get(loadedUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
