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

// ContactStore is the storage surface the contact handlers need.
type ContactStore interface {
	Insert(ctx context.Context, in storage.CreateContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context, f domain.ContactFilter) (*storage.ContactPage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	store ContactStore
	log   logger.Logger
}

// NewContactHandler creates a contact handler.
func NewContactHandler(store ContactStore, log logger.Logger) *ContactHandler {
	return &ContactHandler{store: store, log: log}
}

type submitContactRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=300"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Submit handles POST /api/v1/contact. New messages start unread.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	msg, err := h.store.Insert(c.Request.Context(), storage.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("Contact message received", logger.String("id", msg.ID.String()))
	c.JSON(http.StatusCreated, gin.H{
		"id":      msg.ID,
		"message": "Message received. Thank you for reaching out.",
	})
}

// List handles GET /api/v1/admin/contact, unread first then newest.
func (h *ContactHandler) List(c *gin.Context) {
	var filter domain.ContactFilter
	filter.Limit, filter.Offset = parsePagination(c)

	if v := c.Query("status"); v != "" {
		status := domain.ContactStatus(v)
		if !status.Valid() {
			respondBadRequest(c, "invalid contact status")
			return
		}
		filter.Status = &status
	}

	page, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages":     page.Messages,
		"total":        page.Total,
		"unread_count": page.UnreadCount,
	})
}

type updateContactStatusRequest struct {
	Status domain.ContactStatus `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/v1/admin/contact/:id/status.
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Status.Valid() {
		respondBadRequest(c, "invalid contact status")
		return
	}

	if err := h.store.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/admin/contact/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
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
