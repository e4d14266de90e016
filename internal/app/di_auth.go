package app

import (
	"fmt"

	authHTTP "github.com/allisson/cms/internal/auth/http"
	authService "github.com/allisson/cms/internal/auth/service"
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
)

// SecretService returns the password hashing service.
func (c *Container) SecretService() authService.SecretService {
	c.modules.secretServiceInit.Do(func() {
		c.modules.secretService = authService.NewSecretService()
	})
	return c.modules.secretService
}

// TokenService returns the JWT token service.
// Both signing secrets come from configuration and must be set and distinct.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.modules.tokenServiceInit.Do(func() {
		tokenService, err := authService.NewJWTTokenService(authService.JWTConfig{
			AccessSecret:  c.config.JWTAccessSecret,
			RefreshSecret: c.config.JWTRefreshSecret,
			AccessTTL:     c.config.JWTAccessExpiration,
			RefreshTTL:    c.config.JWTRefreshExpiration,
		})
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.modules.tokenService = tokenService
	})
	if err, exists := c.initErrors["tokenService"]; exists {
		return nil, err
	}
	return c.modules.tokenService, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	c.modules.authUseCaseInit.Do(func() {
		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get token service for auth use case: %w", err)
			return
		}

		store, err := c.UserUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get user use case for auth use case: %w", err)
			return
		}

		baseUseCase := authUseCase.NewAuthUseCase(store, tokenService, c.SecretService(), c.Logger())

		// Wrap with metrics if enabled
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["authUseCase"] = fmt.Errorf("failed to get business metrics for auth use case: %w", err)
				return
			}
			baseUseCase = authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics)
		}

		c.modules.authUseCase = baseUseCase
	})
	if err, exists := c.initErrors["authUseCase"]; exists {
		return nil, err
	}
	return c.modules.authUseCase, nil
}

// AuthHandler returns the authentication HTTP handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	c.modules.authHandlerInit.Do(func() {
		useCase, err := c.AuthUseCase()
		if err != nil {
			c.initErrors["authHandler"] = fmt.Errorf("failed to get auth use case for auth handler: %w", err)
			return
		}

		cookie := authHTTP.CookieConfig{
			MaxAge: c.config.JWTRefreshExpiration,
			Secure: c.config.CookieSecure,
		}

		c.modules.authHandler = authHTTP.NewAuthHandler(useCase, cookie, c.Logger())
	})
	if err, exists := c.initErrors["authHandler"]; exists {
		return nil, err
	}
	return c.modules.authHandler, nil
}
