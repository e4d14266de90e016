package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/cms/internal/article/domain"
)

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	if args.Error(0) == nil {
		article.ID = 1
	}
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, offset, limit int) ([]*domain.Article, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestArticleUseCase_Create(t *testing.T) {
	t.Run("creates article for author", func(t *testing.T) {
		txManager := &MockTxManager{}
		repo := &MockArticleRepository{}
		useCase := NewArticleUseCase(txManager, repo)

		ctx := context.Background()
		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Article")).Return(nil)

		article, err := useCase.Create(ctx, CreateArticleInput{
			Title:            "Go in production",
			Description:      "A long description",
			ShortDescription: "Short",
			AuthorID:         7,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), article.AuthorID)
		assert.Equal(t, int64(1), article.ID)

		txManager.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		useCase := NewArticleUseCase(&MockTxManager{}, &MockArticleRepository{})

		article, err := useCase.Create(context.Background(), CreateArticleInput{
			Description:      "A long description",
			ShortDescription: "Short",
			AuthorID:         7,
		})

		assert.Error(t, err)
		assert.Nil(t, article)
	})

	t.Run("rejects missing author", func(t *testing.T) {
		useCase := NewArticleUseCase(&MockTxManager{}, &MockArticleRepository{})

		article, err := useCase.Create(context.Background(), CreateArticleInput{
			Title:            "Go in production",
			Description:      "A long description",
			ShortDescription: "Short",
		})

		assert.Error(t, err)
		assert.Nil(t, article)
	})
}

func TestArticleUseCase_Update(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockArticleRepository{}
	useCase := NewArticleUseCase(txManager, repo)

	ctx := context.Background()
	existing := &domain.Article{
		ID:               1,
		Title:            "Go in production",
		Description:      "A long description",
		ShortDescription: "Short",
		AuthorID:         7,
	}

	newTitle := "Go at scale"
	categoryID := int64(3)

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("GetByID", ctx, int64(1)).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Article")).Return(nil)

	article, err := useCase.Update(ctx, 1, UpdateArticleInput{
		Title:      &newTitle,
		CategoryID: &categoryID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Go at scale", article.Title)
	assert.Equal(t, int64(7), article.AuthorID) // ownership never changes here
	assert.Equal(t, int64(3), *article.CategoryID)

	txManager.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestArticleUseCase_Delete(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockArticleRepository{}
	useCase := NewArticleUseCase(txManager, repo)

	ctx := context.Background()
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("Delete", ctx, int64(1)).Return(nil)

	assert.NoError(t, useCase.Delete(ctx, 1))

	txManager.AssertExpectations(t)
	repo.AssertExpectations(t)
}
