package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/storage"
)

// TechnologyStore is the storage surface the technology handlers need.
type TechnologyStore interface {
	List(ctx context.Context, f domain.TechnologyFilter) ([]domain.Technology, error)
	Create(ctx context.Context, in storage.CreateTechnologyInput) (*domain.Technology, error)
	Update(ctx context.Context, in storage.UpdateTechnologyInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TechnologyHandler serves the public technology listing and the admin CRUD.
type TechnologyHandler struct {
	store TechnologyStore
	log   logger.Logger
}

// NewTechnologyHandler creates a technology handler.
func NewTechnologyHandler(store TechnologyStore, log logger.Logger) *TechnologyHandler {
	return &TechnologyHandler{store: store, log: log}
}

// List handles GET /api/v1/technologies with an optional category filter.
func (h *TechnologyHandler) List(c *gin.Context) {
	var filter domain.TechnologyFilter
	filter.Limit, filter.Offset = parsePagination(c)

	if v := c.Query("category"); v != "" {
		category := domain.TechnologyCategory(v)
		if !category.Valid() {
			respondBadRequest(c, "invalid technology category")
			return
		}
		filter.Category = &category
	}

	technologies, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"technologies": technologies})
}

type createTechnologyRequest struct {
	Name     string                    `json:"name" binding:"required"`
	Icon     string                    `json:"icon"`
	Color    string                    `json:"color"`
	Category domain.TechnologyCategory `json:"category" binding:"required"`
}

// Create handles POST /api/v1/admin/technologies.
func (h *TechnologyHandler) Create(c *gin.Context) {
	var req createTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Category.Valid() {
		respondBadRequest(c, "invalid technology category")
		return
	}

	technology, err := h.store.Create(c.Request.Context(), storage.CreateTechnologyInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Color:    req.Color,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, technology)
}

type updateTechnologyRequest struct {
	Name     *string                    `json:"name"`
	Icon     *string                    `json:"icon"`
	Color    *string                    `json:"color"`
	Category *domain.TechnologyCategory `json:"category"`
}

// Update handles PUT /api/v1/admin/technologies/:id.
func (h *TechnologyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		respondBadRequest(c, "invalid technology category")
		return
	}

	err := h.store.Update(c.Request.Context(), storage.UpdateTechnologyInput{
		ID:       id,
		Name:     req.Name,
		Icon:     req.Icon,
		Color:    req.Color,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/admin/technologies/:id. Project links to
// the technology are removed with it.
func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
