package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/k1ngs/portfolio-api/internal/auth"
	"github.com/k1ngs/portfolio-api/internal/config"
	"github.com/k1ngs/portfolio-api/internal/handler"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

func newLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		SessionSecret:     "test-session-secret",
		TokenTTL:          time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
	tokens := auth.NewManager(cfg.SessionSecret, cfg.TokenTTL, "portfolio-api")
	h := handler.NewAuthHandler(tokens, cfg, logger.NewNop())

	r := gin.New()
	r.POST("/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r := newLoginRouter(t)

	w := postJSON(r, "/login", `{"username":"admin","password":"correct horse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"expires_in":3600`)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := newLoginRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "wrong password", body: `{"username":"admin","password":"wrong"}`},
		{name: "wrong username", body: `{"username":"root","password":"correct horse"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/login", tt.body)

			// Both failure modes answer identically.
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	r := newLoginRouter(t)

	w := postJSON(r, "/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
