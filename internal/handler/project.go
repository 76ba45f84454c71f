package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/storage"
)

// ProjectStore is the storage surface the project handlers need.
type ProjectStore interface {
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.ResolvedProject, error)
	GetByIndex(ctx context.Context, index int, language string) (*domain.ResolvedProject, error)
	Create(ctx context.Context, in storage.CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, in storage.UpdateProjectInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectHandler serves the public project listing and the admin CRUD.
type ProjectHandler struct {
	store           ProjectStore
	defaultLanguage string
	log             logger.Logger
}

// NewProjectHandler creates a project handler.
func NewProjectHandler(store ProjectStore, defaultLanguage string, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{store: store, defaultLanguage: defaultLanguage, log: log}
}

// List handles GET /api/v1/projects with optional category, featured and
// lang filters.
func (h *ProjectHandler) List(c *gin.Context) {
	filter := domain.ProjectFilter{Language: languageOr(c, h.defaultLanguage)}
	filter.Limit, filter.Offset = parsePagination(c)

	if v := c.Query("category"); v != "" {
		category := domain.ProjectCategory(v)
		if !category.Valid() {
			respondBadRequest(c, "invalid project category")
			return
		}
		filter.Category = &category
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}

	projects, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Get handles GET /api/v1/projects/:index, the 1-based position in the
// public listing order. It matches the numbering of the terminal's
// project listing.
func (h *ProjectHandler) Get(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 1 {
		respondBadRequest(c, "invalid project index")
		return
	}

	project, err := h.store.GetByIndex(c.Request.Context(), index, languageOr(c, h.defaultLanguage))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

type createProjectRequest struct {
	Title        string                           `json:"title" binding:"required"`
	Description  string                           `json:"description" binding:"required"`
	Content      string                           `json:"content"`
	Category     domain.ProjectCategory           `json:"category" binding:"required"`
	Featured     bool                             `json:"featured"`
	GithubURL    string                           `json:"github_url"`
	DemoURL      string                           `json:"demo_url"`
	ImageURL     string                           `json:"image_url"`
	Technologies []uuid.UUID                      `json:"technologies"`
	Tags         []string                         `json:"tags"`
	Translations []domain.ProjectTranslationInput `json:"translations" binding:"omitempty,dive"`
}

// Create handles POST /api/v1/admin/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Category.Valid() {
		respondBadRequest(c, "invalid project category")
		return
	}

	project, err := h.store.Create(c.Request.Context(), storage.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		Category:     req.Category,
		Featured:     req.Featured,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		Tags:         req.Tags,
		Translations: req.Translations,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

type updateProjectRequest struct {
	Title        *string                          `json:"title"`
	Description  *string                          `json:"description"`
	Content      *string                          `json:"content"`
	Category     *domain.ProjectCategory          `json:"category"`
	Featured     *bool                            `json:"featured"`
	GithubURL    *string                          `json:"github_url"`
	DemoURL      *string                          `json:"demo_url"`
	ImageURL     *string                          `json:"image_url"`
	Technologies []uuid.UUID                      `json:"technologies"`
	Tags         []string                         `json:"tags"`
	Translations []domain.ProjectTranslationInput `json:"translations" binding:"omitempty,dive"`
}

// Update handles PUT /api/v1/admin/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Category != nil && !req.Category.Valid() {
		respondBadRequest(c, "invalid project category")
		return
	}

	err := h.store.Update(c.Request.Context(), storage.UpdateProjectInput{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		Category:     req.Category,
		Featured:     req.Featured,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		Tags:         req.Tags,
		Translations: req.Translations,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/admin/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
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
