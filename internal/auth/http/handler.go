package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/cms/internal/auth/domain"
	"github.com/allisson/cms/internal/auth/http/dto"
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
	"github.com/allisson/cms/internal/httputil"
	userDTO "github.com/allisson/cms/internal/user/http/dto"
)

// refreshTokenCookie is the name of the http-only cookie carrying the
// refresh token between login and refresh calls.
const refreshTokenCookie = "refreshToken"

// CookieConfig controls the attributes of the refresh token cookie.
type CookieConfig struct {
	// MaxAge is the cookie lifetime; it should match the refresh token TTL.
	MaxAge time.Duration
	// Secure marks the cookie as HTTPS-only. Disabled in local development.
	Secure bool
}

// AuthHandler handles login, token refresh, logout and current-user requests.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	cookie      CookieConfig
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(useCase authUseCase.AuthUseCase, cookie CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// setRefreshCookie writes the refresh token cookie. The cookie is http-only
// and SameSite strict so browser scripts and cross-site requests never see it.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshTokenCookie, token, maxAge, "/", "", h.cookie.Secure, true)
}

// LoginHandler authenticates a user with email and password.
// POST /v1/auth/login
//
// On success the refresh token is set as an http-only cookie and the access
// token is returned in the body. Bad credentials and inactive accounts are
// rejected with 403 without distinguishing the cause beyond the message.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.setRefreshCookie(c, output.RefreshToken, int(h.cookie.MaxAge.Seconds()))

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: output.AccessToken})
}

// RefreshHandler exchanges the refresh token cookie for a new access token.
// POST /v1/auth/refresh
//
// A missing cookie is a 401; an invalid or expired refresh token is a 403.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		httputil.HandleErrorGin(c, authDomain.ErrCredentialMissing, h.logger)
		return
	}

	accessToken, err := h.authUseCase.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// LogoutHandler clears the refresh token cookie.
// POST /v1/auth/logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.setRefreshCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// MeHandler returns the authenticated user.
// GET /v1/auth/me - requires authentication.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user, ok := GetUser(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrCredentialMissing, h.logger)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToUserResponse(user))
}
