// Package http provides HTTP handlers for category management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/category/http/dto"
	"github.com/allisson/cms/internal/category/usecase"
	"github.com/allisson/cms/internal/httputil"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUseCase usecase.UseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a new category.
// POST /v1/categories - admin only via the permission gate.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.Create(c.Request.Context(), dto.ToCreateCategoryInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// GetHandler returns the category loaded by the LoadCategory middleware.
// GET /v1/categories/:id - public.
func (h *CategoryHandler) GetHandler(c *gin.Context) {
	category := LoadedCategory(c)
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// ListHandler returns a page of categories.
// GET /v1/categories - public.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	categories, err := h.categoryUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories, offset, limit))
}

// UpdateHandler applies a partial update to the loaded category.
// PATCH /v1/categories/:id - admin only via the permission gate.
func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	category := LoadedCategory(c)
	updated, err := h.categoryUseCase.Update(c.Request.Context(), category.ID, dto.ToUpdateCategoryInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(updated))
}

// DeleteHandler removes the loaded category.
// DELETE /v1/categories/:id - admin only via the permission gate.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	category := LoadedCategory(c)
	if err := h.categoryUseCase.Delete(c.Request.Context(), category.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
