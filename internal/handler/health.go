package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds the database ping during a health check.
const healthCheckTimeout = 2 * time.Second

// HealthHandler serves the liveness endpoint and the service banner.
type HealthHandler struct {
	db      *sql.DB
	service string
	version string
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(db *sql.DB, service, version string) *HealthHandler {
	return &HealthHandler{db: db, service: service, version: version}
}

// Health handles GET /health. Reports degraded with a 503 when the
// database does not answer.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := "healthy"
	code := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": h.service,
		"version": h.version,
	})
}

// Root handles GET /, the service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": h.service,
		"version": h.version,
		"status":  "running",
	})
}
