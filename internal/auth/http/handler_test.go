package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/cms/internal/auth/domain"
	"github.com/allisson/cms/internal/auth/http/dto"
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, *MockAuthUseCase) {
	t.Helper()

	mockUseCase := &MockAuthUseCase{}
	cookie := CookieConfig{MaxAge: 7 * 24 * time.Hour, Secure: false}

	return NewAuthHandler(mockUseCase, cookie, testLogger()), mockUseCase
}

func findCookie(result *http.Response, name string) *http.Cookie {
	for _, cookie := range result.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	t.Run("logs in and sets refresh cookie", func(t *testing.T) {
		handler, mockUseCase := setupAuthHandler(t)

		request := dto.LoginRequest{Email: "john@example.com", Password: "SecurePass123!"}
		output := &authUseCase.LoginOutput{
			User:         activeTestUser(),
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		}
		mockUseCase.On("Login", mock.Anything, dto.ToLoginInput(request)).Return(output, nil)

		c, w := createAuthTestContext(http.MethodPost, "/v1/auth/login", request)
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "access-token", response.AccessToken)

		cookie := findCookie(w.Result(), "refreshToken")
		require.NotNil(t, cookie)
		assert.Equal(t, "refresh-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
		assert.Equal(t, "/", cookie.Path)

		// The refresh token never appears in the response body
		assert.NotContains(t, w.Body.String(), "refresh-token")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("bad credentials return 403 without a cookie", func(t *testing.T) {
		handler, mockUseCase := setupAuthHandler(t)

		request := dto.LoginRequest{Email: "john@example.com", Password: "wrong"}
		mockUseCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials)

		c, w := createAuthTestContext(http.MethodPost, "/v1/auth/login", request)
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Nil(t, findCookie(w.Result(), "refreshToken"))
	})

	t.Run("malformed body returns 422", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)

		c, w := createAuthTestContext(http.MethodPost, "/v1/auth/login", nil)
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_RefreshHandler(t *testing.T) {
	t.Run("exchanges cookie for access token", func(t *testing.T) {
		handler, mockUseCase := setupAuthHandler(t)

		mockUseCase.On("Refresh", mock.Anything, "refresh-token").Return("new-access-token", nil)

		c, w := createAuthTestContext(http.MethodPost, "/v1/auth/refresh", nil)
		c.Request.AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh-token"})
		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "new-access-token", response.AccessToken)
	})

	t.Run("missing cookie returns 401", func(t *testing.T) {
		handler, mockUseCase := setupAuthHandler(t)

		c, w := createAuthTestContext(http.MethodPost, "/v1/auth/refresh", nil)
		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Refresh")
	})

	t.Run("invalid refresh token returns 403", func(t *testing.T) {
		handler, mockUseCase := setupAuthHandler(t)

		mockUseCase.On("Refresh", mock.Anything, "expired-token").
			Return("", authDomain.ErrCredentialInvalid)

		c, w := createAuthTestContext(http.MethodPost, "/v1/auth/refresh", nil)
		c.Request.AddCookie(&http.Cookie{Name: "refreshToken", Value: "expired-token"})
		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_LogoutHandler(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	c, w := createAuthTestContext(http.MethodPost, "/v1/auth/logout", nil)
	handler.LogoutHandler(c)
	// c.Status alone does not flush on a bare test context
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)

	cookie := findCookie(w.Result(), "refreshToken")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_MeHandler(t *testing.T) {
	t.Run("returns the authenticated user", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)

		user := activeTestUser()
		c, w := createAuthTestContext(http.MethodGet, "/v1/auth/me", nil)
		withAuthenticatedUser(c, user)

		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.Email)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("anonymous request returns 401", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)

		c, w := createAuthTestContext(http.MethodGet, "/v1/auth/me", nil)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
