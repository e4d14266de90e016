// Package domain defines the core article domain entities and types.
package domain

import (
	"time"

	"github.com/allisson/cms/internal/errors"
)

// Article is a published piece of content owned by its author.
type Article struct {
	ID               int64
	Title            string
	Description      string
	ShortDescription string
	Photo            *string
	AuthorID         int64
	CategoryID       *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AuthzRecord returns the article as a record for permission checks. The
// authorId key drives the ownership rules.
func (a *Article) AuthzRecord() map[string]any {
	record := map[string]any{
		"id":               a.ID,
		"title":            a.Title,
		"description":      a.Description,
		"shortDescription": a.ShortDescription,
		"authorId":         a.AuthorID,
	}
	if a.Photo != nil {
		record["photo"] = *a.Photo
	}
	if a.CategoryID != nil {
		record["categoryId"] = *a.CategoryID
	}
	return record
}

// Domain-specific errors for article operations.
var (
	// ErrArticleNotFound indicates the requested article does not exist.
	ErrArticleNotFound = errors.Wrap(errors.ErrNotFound, "article not found")

	// ErrArticleAlreadyExists indicates an article with the same title already exists.
	ErrArticleAlreadyExists = errors.Wrap(errors.ErrConflict, "article already exists")

	// ErrInvalidReference indicates a referenced author or category does not exist.
	ErrInvalidReference = errors.Wrap(errors.ErrInvalidInput, "referenced author or category does not exist")
)
