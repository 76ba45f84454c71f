package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1ngs/portfolio-api/internal/auth"
)

func newProtectedRouter(m *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(auth.Middleware(m))
	r.GET("/admin", func(c *gin.Context) {
		username, _ := auth.UsernameFromContext(c)
		c.String(http.StatusOK, username)
	})
	return r
}

func TestMiddleware_AllowsValidToken(t *testing.T) {
	m := auth.NewManager(testSecret, time.Hour, "portfolio-api")
	r := newProtectedRouter(m)

	token, err := m.GenerateToken("admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestMiddleware_RejectsMissingOrBadHeader(t *testing.T) {
	m := auth.NewManager(testSecret, time.Hour, "portfolio-api")
	r := newProtectedRouter(m)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "invalid token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
