// Package dto contains request and response types for the category HTTP API.
package dto

import (
	"time"

	"github.com/allisson/cms/internal/category/domain"
	"github.com/allisson/cms/internal/category/usecase"
)

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// UpdateCategoryRequest is the payload for a partial category update
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Key  *string `json:"key"`
}

// CategoryResponse is the public representation of a category
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListCategoriesResponse wraps a page of categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
}

// ToCreateCategoryInput converts a create request to a use case input
func ToCreateCategoryInput(req CreateCategoryRequest) usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name: req.Name,
		Key:  req.Key,
	}
}

// ToUpdateCategoryInput converts an update request to a use case input
func ToUpdateCategoryInput(req UpdateCategoryRequest) usecase.UpdateCategoryInput {
	return usecase.UpdateCategoryInput{
		Name: req.Name,
		Key:  req.Key,
	}
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Key:       category.Key,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToListCategoriesResponse converts a page of domain categories to a response DTO
func ToListCategoriesResponse(categories []*domain.Category, offset, limit int) ListCategoriesResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryResponse(category))
	}
	return ListCategoriesResponse{
		Categories: items,
		Offset:     offset,
		Limit:      limit,
	}
}
