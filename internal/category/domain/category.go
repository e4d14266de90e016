// Package domain defines the core category domain entities and types.
package domain

import (
	"time"

	"github.com/allisson/cms/internal/errors"
)

// Category groups articles under a unique name and URL key.
type Category struct {
	ID        int64
	Name      string
	Key       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthzRecord returns the category as a record for permission checks.
func (c *Category) AuthzRecord() map[string]any {
	return map[string]any{
		"id":   c.ID,
		"name": c.Name,
		"key":  c.Key,
	}
}

// Domain-specific errors for category operations.
var (
	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")

	// ErrCategoryAlreadyExists indicates a category with the same name already exists.
	ErrCategoryAlreadyExists = errors.Wrap(errors.ErrConflict, "category already exists")
)
