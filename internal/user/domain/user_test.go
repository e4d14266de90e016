package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/cms/internal/authz"
)

func TestUser_Roles(t *testing.T) {
	admin := &User{ID: 1, Roles: []string{authz.RoleUser, authz.RoleAdmin}}
	user := &User{ID: 2, Roles: []string{authz.RoleUser}}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
	assert.True(t, user.HasRole(authz.RoleUser))
	assert.False(t, user.HasRole("EDITOR"))
}

func TestUser_Principal(t *testing.T) {
	user := &User{ID: 7, Roles: []string{authz.RoleUser}}

	principal := user.Principal()
	assert.Equal(t, int64(7), principal.ID)
	assert.Equal(t, []string{authz.RoleUser}, principal.Roles)
}

func TestUser_AuthzRecord(t *testing.T) {
	user := &User{
		ID:        7,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "hashed-password",
		Gender:    "M",
		Roles:     []string{authz.RoleUser},
		Active:    true,
	}

	record := user.AuthzRecord()
	assert.Equal(t, int64(7), record["id"])
	assert.Equal(t, []string{authz.RoleUser}, record["roles"])
	// The password hash never enters the permission layer
	assert.NotContains(t, record, "password")
}
