package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/cms/internal/auth/domain"
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
	"github.com/allisson/cms/internal/httputil"
)

// bearerPrefix is the only accepted authorization scheme. The match is exact:
// a lowercase "bearer" or a missing space is treated as malformed.
const bearerPrefix = "Bearer "

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", authDomain.ErrCredentialMissing
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", authDomain.ErrCredentialMalformed
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", authDomain.ErrCredentialMalformed
	}

	return token, nil
}

// AuthenticationMiddleware requires a valid Bearer access token.
//
// The middleware:
//  1. Extracts the Bearer token from the Authorization header (exact scheme)
//  2. Verifies the token and loads the principal via AuthUseCase.Authenticate
//  3. Stores the authenticated user in the request context for GetUser/GetPrincipal
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Invalid/expired token, deleted or inactive principal → 403 Forbidden
//   - Store failures → 500 Internal Server Error (logged, detail withheld)
func AuthenticationMiddleware(useCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		user, err := useCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))

		logger.Debug("authentication successful",
			slog.Int64("user_id", user.ID),
			slog.String("email", user.Email))

		c.Next()
	}
}

// OptionalAuthenticationMiddleware attaches a principal when a valid Bearer
// token is presented and continues anonymously otherwise. No failure in this
// middleware ever rejects the request; the permission gate decides what an
// anonymous request may do.
func OptionalAuthenticationMiddleware(useCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		user, err := useCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("optional authentication ignored credential",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))
		c.Next()
	}
}
