// Package http provides HTTP handlers for article management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/article/http/dto"
	"github.com/allisson/cms/internal/article/usecase"
	authhttp "github.com/allisson/cms/internal/auth/http"
	"github.com/allisson/cms/internal/httputil"
)

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articleUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleUseCase usecase.UseCase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new article owned by the authenticated principal.
// POST /v1/articles
func (h *ArticleHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	principal := authhttp.GetPrincipal(c)
	article, err := h.articleUseCase.Create(c.Request.Context(), dto.ToCreateArticleInput(req, principal.ID))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// GetHandler returns the article loaded by the LoadArticle middleware.
// GET /v1/articles/:id - public.
func (h *ArticleHandler) GetHandler(c *gin.Context) {
	article := LoadedArticle(c)
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// ListHandler returns a page of articles.
// GET /v1/articles - public.
func (h *ArticleHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	articles, err := h.articleUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListArticlesResponse(articles, offset, limit))
}

// UpdateHandler applies a partial update to the loaded article.
// PATCH /v1/articles/:id - ownership enforced by the permission gate.
func (h *ArticleHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	article := LoadedArticle(c)
	updated, err := h.articleUseCase.Update(c.Request.Context(), article.ID, dto.ToUpdateArticleInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(updated))
}

// DeleteHandler removes the loaded article.
// DELETE /v1/articles/:id - ownership enforced by the permission gate.
func (h *ArticleHandler) DeleteHandler(c *gin.Context) {
	article := LoadedArticle(c)
	if err := h.articleUseCase.Delete(c.Request.Context(), article.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
