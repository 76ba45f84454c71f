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

// SkillStore is the storage surface the skill handlers need.
type SkillStore interface {
	List(ctx context.Context, f domain.SkillFilter) ([]domain.ResolvedSkill, error)
	Create(ctx context.Context, in storage.CreateSkillInput) (*domain.Skill, error)
	Update(ctx context.Context, in storage.UpdateSkillInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SkillHandler serves the public skill listing and the admin CRUD.
type SkillHandler struct {
	store           SkillStore
	defaultLanguage string
	log             logger.Logger
}

// NewSkillHandler creates a skill handler.
func NewSkillHandler(store SkillStore, defaultLanguage string, log logger.Logger) *SkillHandler {
	return &SkillHandler{store: store, defaultLanguage: defaultLanguage, log: log}
}

// List handles GET /api/v1/skills with optional category and lang filters.
func (h *SkillHandler) List(c *gin.Context) {
	filter := domain.SkillFilter{Language: languageOr(c, h.defaultLanguage)}
	filter.Limit, filter.Offset = parsePagination(c)

	if v := c.Query("category"); v != "" {
		category := domain.SkillCategory(v)
		if !category.Valid() {
			respondBadRequest(c, "invalid skill category")
			return
		}
		filter.Category = &category
	}

	skills, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

type createSkillRequest struct {
	Name         string                         `json:"name" binding:"required"`
	Level        int                            `json:"level" binding:"min=0,max=100"`
	Category     domain.SkillCategory           `json:"category" binding:"required"`
	YearsOfExp   int                            `json:"years_of_exp" binding:"min=0"`
	TechnologyID *uuid.UUID                     `json:"technology_id"`
	Translations []domain.SkillTranslationInput `json:"translations" binding:"omitempty,dive"`
}

// Create handles POST /api/v1/admin/skills.
func (h *SkillHandler) Create(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Category.Valid() {
		respondBadRequest(c, "invalid skill category")
		return
	}

	skill, err := h.store.Create(c.Request.Context(), storage.CreateSkillInput{
		Name:         req.Name,
		Level:        req.Level,
		Category:     req.Category,
		YearsOfExp:   req.YearsOfExp,
		TechnologyID: req.TechnologyID,
		Translations: req.Translations,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

type updateSkillRequest struct {
	Name         *string                        `json:"name"`
	Level        *int                           `json:"level" binding:"omitempty,min=0,max=100"`
	Category     *domain.SkillCategory          `json:"category"`
	YearsOfExp   *int                           `json:"years_of_exp" binding:"omitempty,min=0"`
	TechnologyID *uuid.UUID                     `json:"technology_id"`
	Translations []domain.SkillTranslationInput `json:"translations" binding:"omitempty,dive"`
}

// Update handles PUT /api/v1/admin/skills/:id.
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		respondBadRequest(c, "invalid skill category")
		return
	}

	err := h.store.Update(c.Request.Context(), storage.UpdateSkillInput{
		ID:           id,
		Name:         req.Name,
		Level:        req.Level,
		Category:     req.Category,
		YearsOfExp:   req.YearsOfExp,
		TechnologyID: req.TechnologyID,
		Translations: req.Translations,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/admin/skills/:id.
func (h *SkillHandler) Delete(c *gin.Context) {
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
