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

// ContentStore is the storage surface the content handlers need.
type ContentStore interface {
	GetByKey(ctx context.Context, key, language string) (*domain.ResolvedContent, error)
	GetByCategory(ctx context.Context, category, language string) ([]domain.ResolvedContent, error)
	GetAll(ctx context.Context, language string) (map[string]map[string]domain.ResolvedContent, error)
	Create(ctx context.Context, in storage.CreateContentInput) (*domain.Content, error)
	Update(ctx context.Context, in storage.UpdateContentInput) (*domain.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdminList(ctx context.Context, category string, limit, offset int) ([]domain.ContentDetail, int, error)
	Categories(ctx context.Context) ([]string, error)
}

// ContentHandler serves the public resolution endpoints and the admin CRUD
// for editable content.
type ContentHandler struct {
	store           ContentStore
	defaultLanguage string
	log             logger.Logger
}

// NewContentHandler creates a content handler resolving to defaultLanguage
// when the request does not name one.
func NewContentHandler(store ContentStore, defaultLanguage string, log logger.Logger) *ContentHandler {
	return &ContentHandler{store: store, defaultLanguage: defaultLanguage, log: log}
}

// GetByKey handles GET /api/v1/content/key/:key. Resolution degrades,
// never errors: an unknown key answers 200 with a null body and a key
// without a translation answers 200 with a null translation, so the
// client applies its own fallback either way.
func (h *ContentHandler) GetByKey(c *gin.Context) {
	language := languageOr(c, h.defaultLanguage)

	rc, err := h.store.GetByKey(c.Request.Context(), c.Param("key"), language)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if rc == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, rc)
}

// GetByCategory handles GET /api/v1/content/category/:category.
func (h *ContentHandler) GetByCategory(c *gin.Context) {
	language := languageOr(c, h.defaultLanguage)

	items, err := h.store.GetByCategory(c.Request.Context(), c.Param("category"), language)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": c.Param("category"), "items": items})
}

// GetAll handles GET /api/v1/content, returning all content grouped by
// category and key.
func (h *ContentHandler) GetAll(c *gin.Context) {
	language := languageOr(c, h.defaultLanguage)

	grouped, err := h.store.GetAll(c.Request.Context(), language)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

type createContentRequest struct {
	Key          string                    `json:"key" binding:"required"`
	Type         domain.ContentType        `json:"type" binding:"required"`
	Category     string                    `json:"category" binding:"required"`
	Translations []domain.TranslationInput `json:"translations" binding:"required,min=1,dive"`
}

// Create handles POST /api/v1/admin/content.
func (h *ContentHandler) Create(c *gin.Context) {
	var req createContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Type.Valid() {
		respondBadRequest(c, "invalid content type")
		return
	}

	content, err := h.store.Create(c.Request.Context(), storage.CreateContentInput{
		Key:          req.Key,
		Type:         req.Type,
		Category:     req.Category,
		Translations: req.Translations,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

type updateContentRequest struct {
	Key          *string                   `json:"key"`
	Type         *domain.ContentType       `json:"type"`
	Category     *string                   `json:"category"`
	Translations []domain.TranslationInput `json:"translations" binding:"omitempty,dive"`
}

// Update handles PUT /api/v1/admin/content/:id. Omitted fields are left
// unchanged; a provided translations array replaces the full set.
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Type != nil && !req.Type.Valid() {
		respondBadRequest(c, "invalid content type")
		return
	}

	content, err := h.store.Update(c.Request.Context(), storage.UpdateContentInput{
		ID:           id,
		Key:          req.Key,
		Type:         req.Type,
		Category:     req.Category,
		Translations: req.Translations,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// Delete handles DELETE /api/v1/admin/content/:id. Translations are
// removed with the content item.
func (h *ContentHandler) Delete(c *gin.Context) {
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

// AdminList handles GET /api/v1/admin/content with full translation sets
// and pagination.
func (h *ContentHandler) AdminList(c *gin.Context) {
	limit, offset := parsePagination(c)

	items, total, err := h.store.AdminList(c.Request.Context(), c.Query("category"), limit, offset)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
		"has_more": offset+len(items) < total,
	})
}

// Categories handles GET /api/v1/admin/content/categories.
func (h *ContentHandler) Categories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
