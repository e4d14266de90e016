package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	articleHTTP "github.com/allisson/cms/internal/article/http"
	articleUseCase "github.com/allisson/cms/internal/article/usecase"
	authHTTP "github.com/allisson/cms/internal/auth/http"
	authUseCase "github.com/allisson/cms/internal/auth/usecase"
	"github.com/allisson/cms/internal/authz"
	categoryHTTP "github.com/allisson/cms/internal/category/http"
	categoryUseCase "github.com/allisson/cms/internal/category/usecase"
	"github.com/allisson/cms/internal/config"
	"github.com/allisson/cms/internal/metrics"
	userHTTP "github.com/allisson/cms/internal/user/http"
	userUseCase "github.com/allisson/cms/internal/user/usecase"
)

// Handlers groups the module handlers the route table mounts.
type Handlers struct {
	Auth     *authHTTP.AuthHandler
	User     *userHTTP.UserHandler
	Article  *articleHTTP.ArticleHandler
	Category *categoryHTTP.CategoryHandler
}

// UseCases groups the use cases the server-level middlewares need: the auth
// gates authenticate against AuthUseCase and the existence middlewares load
// records through the module use cases.
type UseCases struct {
	Auth     authUseCase.AuthUseCase
	User     userUseCase.UseCase
	Article  articleUseCase.UseCase
	Category categoryUseCase.UseCase
}

// Server is the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	db     *sql.DB
}

// NewServer creates the API server and builds the full route table.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	handlers Handlers,
	useCases UseCases,
	metricsProvider *metrics.Provider,
) *Server {
	router := gin.New()
	router.Use(requestid.New())
	router.Use(CustomRecoveryMiddleware(logger))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	server := &Server{
		router: router,
		logger: logger,
		db:     db,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	server.setupRoutes(cfg, handlers, useCases)

	return server
}

// setupRoutes mounts the health endpoints and the versioned API.
//
// Access model per route group:
//   - /v1/auth: login/refresh are rate limited per IP; me requires a token
//   - /v1/users: signup is open (optional auth + a create check against the
//     request body), everything else requires a token and a permission check
//     against the loaded record
//   - /v1/articles: reads are public; writes require a token, creation a
//     type-level check, update/delete an ownership check on the loaded
//     record with the body keys as the touched fields
//   - /v1/categories: reads are public; writes require a permission only
//     admins hold
func (s *Server) setupRoutes(cfg *config.Config, handlers Handlers, useCases UseCases) {
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/ready", s.readinessHandler)

	requireAuth := authHTTP.AuthenticationMiddleware(useCases.Auth, s.logger)
	optionalAuth := authHTTP.OptionalAuthenticationMiddleware(useCases.Auth, s.logger)

	authenticated := []gin.HandlerFunc{requireAuth}
	if cfg.RateLimitEnabled {
		authenticated = append(authenticated,
			authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	v1 := s.router.Group("/v1")

	authRoutes := v1.Group("/auth")
	{
		if cfg.RateLimitLoginEnabled {
			loginLimiter := authHTTP.LoginRateLimitMiddleware(
				cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, s.logger)
			authRoutes.POST("/login", loginLimiter, handlers.Auth.LoginHandler)
			authRoutes.POST("/refresh", loginLimiter, handlers.Auth.RefreshHandler)
		} else {
			authRoutes.POST("/login", handlers.Auth.LoginHandler)
			authRoutes.POST("/refresh", handlers.Auth.RefreshHandler)
		}
		authRoutes.POST("/logout", handlers.Auth.LogoutHandler)
		authRoutes.GET("/me", append(authenticated, handlers.Auth.MeHandler)...)
	}

	userRoutes := v1.Group("/users")
	{
		// Signup: anonymous allowed, but the body is checked as the subject
		// so nobody signs up with the admin role.
		userRoutes.POST("",
			optionalAuth,
			authHTTP.RequirePermission(authz.ActionCreate, authHTTP.BodySubject(authz.SubjectUser), nil, s.logger),
			handlers.User.CreateHandler)

		// Listing exposes every user, so it needs the type-level read grant
		// only admins hold.
		userRoutes.GET("", append(authenticated,
			authHTTP.RequirePermission(authz.ActionRead, authHTTP.StaticSubject(authz.SubjectUser), nil, s.logger),
			handlers.User.ListHandler)...)

		loadUser := userHTTP.LoadUser(useCases.User, s.logger)
		userRoutes.GET("/:id", append(authenticated,
			loadUser,
			authHTTP.RequirePermission(authz.ActionRead, userHTTP.LoadedUserSubject(), nil, s.logger),
			handlers.User.GetHandler)...)
		userRoutes.PATCH("/:id", append(authenticated,
			loadUser,
			authHTTP.RequirePermission(authz.ActionUpdate, userHTTP.LoadedUserSubject(), authHTTP.BodyFields(), s.logger),
			handlers.User.UpdateHandler)...)
		userRoutes.DELETE("/:id", append(authenticated,
			loadUser,
			authHTTP.RequirePermission(authz.ActionDelete, userHTTP.LoadedUserSubject(), nil, s.logger),
			handlers.User.DeleteHandler)...)
	}

	articleRoutes := v1.Group("/articles")
	{
		loadArticle := articleHTTP.LoadArticle(useCases.Article, s.logger)

		articleRoutes.GET("", handlers.Article.ListHandler)
		articleRoutes.GET("/:id", loadArticle, handlers.Article.GetHandler)

		articleRoutes.POST("", append(authenticated,
			authHTTP.RequirePermission(authz.ActionCreate, authHTTP.StaticSubject(authz.SubjectArticle), nil, s.logger),
			handlers.Article.CreateHandler)...)
		articleRoutes.PATCH("/:id", append(authenticated,
			loadArticle,
			authHTTP.RequirePermission(authz.ActionUpdate, articleHTTP.LoadedArticleSubject(), authHTTP.BodyFields(), s.logger),
			handlers.Article.UpdateHandler)...)
		articleRoutes.DELETE("/:id", append(authenticated,
			loadArticle,
			authHTTP.RequirePermission(authz.ActionDelete, articleHTTP.LoadedArticleSubject(), nil, s.logger),
			handlers.Article.DeleteHandler)...)
	}

	categoryRoutes := v1.Group("/categories")
	{
		loadCategory := categoryHTTP.LoadCategory(useCases.Category, s.logger)

		categoryRoutes.GET("", handlers.Category.ListHandler)
		categoryRoutes.GET("/:id", loadCategory, handlers.Category.GetHandler)

		categoryRoutes.POST("", append(authenticated,
			authHTTP.RequirePermission(authz.ActionCreate, authHTTP.StaticSubject(authz.SubjectCategory), nil, s.logger),
			handlers.Category.CreateHandler)...)
		categoryRoutes.PATCH("/:id", append(authenticated,
			loadCategory,
			authHTTP.RequirePermission(authz.ActionUpdate, categoryHTTP.LoadedCategorySubject(), authHTTP.BodyFields(), s.logger),
			handlers.Category.UpdateHandler)...)
		categoryRoutes.DELETE("/:id", append(authenticated,
			loadCategory,
			authHTTP.RequirePermission(authz.ActionDelete, categoryHTTP.LoadedCategorySubject(), nil, s.logger),
			handlers.Category.DeleteHandler)...)
	}
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness to serve traffic by pinging the
// database.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
