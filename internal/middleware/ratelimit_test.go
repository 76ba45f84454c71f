package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/k1ngs/portfolio-api/internal/middleware"
)

const testRateLimit = 3

func newLimitedRouter(t *testing.T, max int, window time.Duration) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	r := gin.New()
	r.Use(middleware.NewLimiter(max, window, done).Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func doRequest(r *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w
}

func TestLimiter_AllowsUnderLimit(t *testing.T) {
	r := newLimitedRouter(t, testRateLimit, time.Minute)

	for i := 0; i < testRateLimit; i++ {
		w := doRequest(r, "1.2.3.4:1234")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	r := newLimitedRouter(t, testRateLimit, time.Minute)

	for i := 0; i < testRateLimit; i++ {
		w := doRequest(r, "1.2.3.4:1234")
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := doRequest(r, "1.2.3.4:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header on 429")
	}

	var body struct {
		Error      string `json:"error"`
		Message    string `json:"message"`
		RetryAfter int    `json:"retryAfter"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode 429 body: %v", err)
	}
	if body.Error != "Too Many Requests" {
		t.Fatalf("unexpected error field: %q", body.Error)
	}
	if body.Message != "Rate limit exceeded. Please try again later." {
		t.Fatalf("unexpected message field: %q", body.Message)
	}
	if body.RetryAfter < 1 {
		t.Fatalf("expected positive retryAfter, got %d", body.RetryAfter)
	}
}

func TestLimiter_DifferentIPsIndependent(t *testing.T) {
	r := newLimitedRouter(t, 1, time.Minute)

	if w := doRequest(r, "1.1.1.1:1234"); w.Code != http.StatusOK {
		t.Fatalf("IP1: expected 200, got %d", w.Code)
	}
	if w := doRequest(r, "2.2.2.2:1234"); w.Code != http.StatusOK {
		t.Fatalf("IP2: expected 200, got %d", w.Code)
	}
	if w := doRequest(r, "1.1.1.1:1234"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("IP1 second request: expected 429, got %d", w.Code)
	}
}

func TestLimiter_WindowResets(t *testing.T) {
	r := newLimitedRouter(t, 1, 50*time.Millisecond)

	if w := doRequest(r, "1.2.3.4:1234"); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := doRequest(r, "1.2.3.4:1234"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}

	time.Sleep(80 * time.Millisecond)

	if w := doRequest(r, "1.2.3.4:1234"); w.Code != http.StatusOK {
		t.Fatalf("request after window reset: expected 200, got %d", w.Code)
	}
}

func TestLimiter_ConcurrentAdmitExact(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	const (
		threshold = 10
		requests  = 50
	)
	l := middleware.NewLimiter(threshold, time.Minute, done)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Admit("9.9.9.9"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != threshold {
		t.Fatalf("expected exactly %d admitted, got %d", threshold, allowed)
	}
}
