// Package domain defines the core user domain entities and types.
package domain

import (
	"slices"
	"time"

	"github.com/allisson/cms/internal/authz"
	"github.com/allisson/cms/internal/errors"
)

// Gender values accepted for a user profile.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// User represents a user in the system
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
	Gender    string
	Roles     []string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.HasRole(authz.RoleAdmin)
}

// Principal returns the authorization view of the user.
func (u *User) Principal() *authz.Principal {
	return &authz.Principal{
		ID:    u.ID,
		Roles: u.Roles,
	}
}

// AuthzRecord returns the user as a record for permission checks. Keys match
// the JSON names clients use, so rules written against request bodies and
// rules written against stored users read the same fields.
func (u *User) AuthzRecord() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"gender":    u.Gender,
		"roles":     u.Roles,
		"active":    u.Active,
	}
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidGender indicates the gender value is not one of M or F.
	ErrInvalidGender = errors.Wrap(errors.ErrInvalidInput, "gender must be M or F")
)
