package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/allisson/cms/internal/user/domain"
	userUseCase "github.com/allisson/cms/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of userUseCase.UseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Create(ctx context.Context, input userUseCase.CreateUserInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) Update(
	ctx context.Context,
	id int64,
	input userUseCase.UpdateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAdminExists(t *testing.T) {
	t.Run("empty user table has no admin", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		mockUseCase.On("List", mock.Anything, 0, adminScanPageSize).
			Return([]*userDomain.User{}, nil)

		exists, err := adminExists(context.Background(), mockUseCase)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("finds admin on a later page", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}

		firstPage := make([]*userDomain.User, adminScanPageSize)
		for i := range firstPage {
			firstPage[i] = &userDomain.User{ID: int64(i + 1), Roles: []string{"USER"}}
		}
		secondPage := []*userDomain.User{
			{ID: int64(adminScanPageSize + 1), Roles: []string{"ADMIN"}},
		}

		mockUseCase.On("List", mock.Anything, 0, adminScanPageSize).Return(firstPage, nil)
		mockUseCase.On("List", mock.Anything, adminScanPageSize, adminScanPageSize).Return(secondPage, nil)

		exists, err := adminExists(context.Background(), mockUseCase)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("only regular users means no admin", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}

		users := []*userDomain.User{
			{ID: 1, Roles: []string{"USER"}},
			{ID: 2, Roles: []string{"USER"}},
		}

		mockUseCase.On("List", mock.Anything, 0, adminScanPageSize).Return(users, nil)
		mockUseCase.On("List", mock.Anything, 2, adminScanPageSize).Return([]*userDomain.User{}, nil)

		exists, err := adminExists(context.Background(), mockUseCase)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
