// Package dto contains request and response types for the article HTTP API.
package dto

import (
	"time"

	"github.com/allisson/cms/internal/article/domain"
	"github.com/allisson/cms/internal/article/usecase"
)

// CreateArticleRequest is the payload for creating an article. The author is
// taken from the authenticated principal, not from the payload.
type CreateArticleRequest struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"shortDescription"`
	Photo            *string `json:"photo"`
	CategoryID       *int64  `json:"categoryId"`
}

// UpdateArticleRequest is the payload for a partial article update
type UpdateArticleRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"shortDescription"`
	Photo            *string `json:"photo"`
	CategoryID       *int64  `json:"categoryId"`
}

// ArticleResponse is the public representation of an article
type ArticleResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Photo            *string   `json:"photo,omitempty"`
	AuthorID         int64     `json:"authorId"`
	CategoryID       *int64    `json:"categoryId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListArticlesResponse wraps a page of articles
type ListArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}

// ToCreateArticleInput converts a create request to a use case input
func ToCreateArticleInput(req CreateArticleRequest, authorID int64) usecase.CreateArticleInput {
	return usecase.CreateArticleInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Photo:            req.Photo,
		AuthorID:         authorID,
		CategoryID:       req.CategoryID,
	}
}

// ToUpdateArticleInput converts an update request to a use case input
func ToUpdateArticleInput(req UpdateArticleRequest) usecase.UpdateArticleInput {
	return usecase.UpdateArticleInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Photo:            req.Photo,
		CategoryID:       req.CategoryID,
	}
}

// ToArticleResponse converts a domain article to a response DTO
func ToArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:               article.ID,
		Title:            article.Title,
		Description:      article.Description,
		ShortDescription: article.ShortDescription,
		Photo:            article.Photo,
		AuthorID:         article.AuthorID,
		CategoryID:       article.CategoryID,
		CreatedAt:        article.CreatedAt,
		UpdatedAt:        article.UpdatedAt,
	}
}

// ToListArticlesResponse converts a page of domain articles to a response DTO
func ToListArticlesResponse(articles []*domain.Article, offset, limit int) ListArticlesResponse {
	items := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		items = append(items, ToArticleResponse(article))
	}
	return ListArticlesResponse{
		Articles: items,
		Offset:   offset,
		Limit:    limit,
	}
}
