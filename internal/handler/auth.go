package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/k1ngs/portfolio-api/internal/auth"
	"github.com/k1ngs/portfolio-api/internal/config"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

// AuthHandler issues admin session tokens against the configured
// credentials.
type AuthHandler struct {
	tokens *auth.Manager
	cfg    config.AuthConfig
	log    logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(tokens *auth.Manager, cfg config.AuthConfig, log logger.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, cfg: cfg, log: log}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login. Wrong username and wrong password
// answer identically so the response does not reveal which part failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		h.log.Warn("Failed login attempt", logger.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(req.Username)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(h.cfg.TokenTTL / time.Second),
	})
}
