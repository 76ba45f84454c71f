// Package handler holds the HTTP handlers. Each handler depends on a
// narrow store interface so it can be tested against fakes.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

// defaultPageLimit caps listings when the client does not ask for a limit.
const defaultPageLimit = 50

// respondError maps domain errors to HTTP status codes. Unexpected errors
// are logged with detail and answered with a generic 500 body.
func respondError(c *gin.Context, log logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, domain.ErrDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		log.Error("Request failed",
			logger.String("path", c.Request.URL.Path),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	}
}

// respondBadRequest answers a 400 with the given message.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// languageOr returns the lang query parameter, or fallback when absent.
func languageOr(c *gin.Context, fallback string) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return fallback
}

// parsePagination reads limit and offset query parameters with defaults.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
