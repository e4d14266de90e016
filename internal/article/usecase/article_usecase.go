// Package usecase implements the article business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/cms/internal/article/domain"
	"github.com/allisson/cms/internal/database"
	appValidation "github.com/allisson/cms/internal/validation"
)

// CreateArticleInput contains the input data for article creation. The author
// is always the authenticated principal, never taken from the payload.
type CreateArticleInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
	Photo            *string
	AuthorID         int64
	CategoryID       *int64 `json:"categoryId"`
}

// UpdateArticleInput contains the input data for a partial article update.
// The authorId is immutable; the permission layer rejects attempts to send it.
type UpdateArticleInput struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"shortDescription"`
	Photo            *string `json:"photo"`
	CategoryID       *int64  `json:"categoryId"`
}

// UseCase defines the interface for article business logic operations
type UseCase interface {
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id int64, input UpdateArticleInput) (*domain.Article, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// ArticleRepository interface defines article repository operations
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// ArticleUseCase handles article-related business logic
type ArticleUseCase struct {
	txManager   database.TxManager
	articleRepo ArticleRepository
}

// NewArticleUseCase creates a new ArticleUseCase
func NewArticleUseCase(txManager database.TxManager, articleRepo ArticleRepository) UseCase {
	return &ArticleUseCase{
		txManager:   txManager,
		articleRepo: articleRepo,
	}
}

func (uc *ArticleUseCase) validateCreateArticleInput(input CreateArticleInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Description,
			validation.Required.Error("description is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.ShortDescription,
			validation.Required.Error("shortDescription is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("shortDescription must be between 1 and 500 characters"),
		),
		validation.Field(&input.AuthorID,
			validation.Required.Error("author is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create creates a new article owned by the given author
func (uc *ArticleUseCase) Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error) {
	if err := uc.validateCreateArticleInput(input); err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		Photo:            input.Photo,
		AuthorID:         input.AuthorID,
		CategoryID:       input.CategoryID,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.articleRepo.Create(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	return article, nil
}

func (uc *ArticleUseCase) validateUpdateArticleInput(input UpdateArticleInput) error {
	fields := []*validation.FieldRules{}

	if input.Title != nil {
		fields = append(fields, validation.Field(&input.Title,
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		))
	}
	if input.Description != nil {
		fields = append(fields, validation.Field(&input.Description, appValidation.NotBlank))
	}
	if input.ShortDescription != nil {
		fields = append(fields, validation.Field(&input.ShortDescription,
			appValidation.NotBlank,
			validation.Length(1, 500).Error("shortDescription must be between 1 and 500 characters"),
		))
	}

	err := validation.ValidateStruct(&input, fields...)
	return appValidation.WrapValidationError(err)
}

// Update applies a partial update to an existing article
func (uc *ArticleUseCase) Update(
	ctx context.Context,
	id int64,
	input UpdateArticleInput,
) (*domain.Article, error) {
	if err := uc.validateUpdateArticleInput(input); err != nil {
		return nil, err
	}

	var article *domain.Article
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		article, err = uc.articleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			article.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			article.Description = *input.Description
		}
		if input.ShortDescription != nil {
			article.ShortDescription = strings.TrimSpace(*input.ShortDescription)
		}
		if input.Photo != nil {
			article.Photo = input.Photo
		}
		if input.CategoryID != nil {
			article.CategoryID = input.CategoryID
		}

		return uc.articleRepo.Update(ctx, article)
	})
	if err != nil {
		return nil, err
	}

	return article, nil
}

// GetByID retrieves an article by ID
func (uc *ArticleUseCase) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	return uc.articleRepo.GetByID(ctx, id)
}

// List retrieves articles with pagination
func (uc *ArticleUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Article, error) {
	return uc.articleRepo.List(ctx, offset, limit)
}

// Delete removes an article by ID
func (uc *ArticleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.articleRepo.Delete(ctx, id)
	})
}
