package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cms/internal/user/domain"
	"github.com/allisson/cms/internal/user/http/dto"
	"github.com/allisson/cms/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of usecase.UseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Create(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Update(
	ctx context.Context,
	id int64,
	input usecase.UpdateUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestHandler(t *testing.T) (*UserHandler, *MockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &MockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testUser() *domain.User {
	return &domain.User{
		ID:        1,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "hashed-password",
		Gender:    "M",
		Roles:     []string{"USER"},
		Active:    true,
	}
}

func TestUserHandler_CreateHandler(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.CreateUserRequest{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "SecurePass123!",
			Gender:    "M",
		}

		mockUseCase.On("Create", mock.Anything, dto.ToCreateUserInput(request)).
			Return(testUser(), nil)

		c, w := createTestContext(http.MethodPost, "/v1/users", request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.ID)
		assert.Equal(t, "john@example.com", response.Email)
		assert.NotContains(t, w.Body.String(), "hashed-password")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("returns 409 for duplicate email", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.CreateUserRequest{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
			Password:  "SecurePass123!",
			Gender:    "M",
		}

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrUserAlreadyExists)

		c, w := createTestContext(http.MethodPost, "/v1/users", request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("returns 422 for malformed body", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_GetHandler(t *testing.T) {
	handler, _ := setupTestHandler(t)

	c, w := createTestContext(http.MethodGet, "/v1/users/1", nil)
	SetLoadedUser(c, testUser())

	handler.GetHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.ID)
}

func TestUserHandler_ListHandler(t *testing.T) {
	t.Run("returns page of users", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		users := []*domain.User{testUser()}
		mockUseCase.On("List", mock.Anything, 0, 50).Return(users, nil)

		c, w := createTestContext(http.MethodGet, "/v1/users", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListUsersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Users, 1)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("returns 400 for invalid pagination", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/users?offset=-1", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_UpdateHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	newFirstName := "Johnny"
	request := dto.UpdateUserRequest{FirstName: &newFirstName}

	updated := testUser()
	updated.FirstName = "Johnny"

	mockUseCase.On("Update", mock.Anything, int64(1), dto.ToUpdateUserInput(request)).
		Return(updated, nil)

	c, w := createTestContext(http.MethodPatch, "/v1/users/1", request)
	SetLoadedUser(c, testUser())

	handler.UpdateHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Johnny", response.FirstName)

	mockUseCase.AssertExpectations(t)
}

func TestUserHandler_DeleteHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	mockUseCase.On("Delete", mock.Anything, int64(1)).Return(nil)

	c, w := createTestContext(http.MethodDelete, "/v1/users/1", nil)
	SetLoadedUser(c, testUser())

	handler.DeleteHandler(c)
	// c.Status alone does not flush on a bare test context
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLoadUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("loads user into context", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		mockUseCase.On("GetByID", mock.Anything, int64(1)).Return(testUser(), nil)

		c, _ := createTestContext(http.MethodGet, "/v1/users/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		LoadUser(mockUseCase, logger)(c)

		assert.False(t, c.IsAborted())
		require.NotNil(t, LoadedUser(c))
		assert.Equal(t, int64(1), LoadedUser(c).ID)
	})

	t.Run("returns 404 for unknown user", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		mockUseCase.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrUserNotFound)

		c, w := createTestContext(http.MethodGet, "/v1/users/42", nil)
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		LoadUser(mockUseCase, logger)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 404 for non-numeric id", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}

		c, w := createTestContext(http.MethodGet, "/v1/users/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		LoadUser(mockUseCase, logger)(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
