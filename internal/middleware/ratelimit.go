package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientEntry struct {
	count         int
	windowResetAt time.Time
}

// Limiter is a fixed-window, per-address request limiter. The window is
// fixed, not sliding: a burst of up to 2x the threshold can cross a window
// boundary. That trade-off is kept deliberately; see Admit.
//
// The entry map is guarded by a mutex so the threshold holds exactly under
// concurrent requests from the same address. A background sweep evicts
// expired entries so the map does not grow without bound.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*clientEntry
	max     int
	window  time.Duration
}

// NewLimiter creates a Limiter allowing max requests per window. The sweep
// goroutine stops when done is closed.
func NewLimiter(max int, window time.Duration, done <-chan struct{}) *Limiter {
	l := &Limiter{
		entries: make(map[string]*clientEntry),
		max:     max,
		window:  window,
	}
	go l.sweep(done)
	return l
}

// Admit records a request from addr and reports whether it is allowed.
// On rejection it returns the whole seconds, rounded up, until the
// client's window resets.
func (l *Limiter) Admit(addr string) (allowed bool, retryAfter int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, exists := l.entries[addr]

	if !exists || now.After(entry.windowResetAt) {
		l.entries[addr] = &clientEntry{count: 1, windowResetAt: now.Add(l.window)}
		return true, 0
	}

	entry.count++
	if entry.count > l.max {
		remaining := entry.windowResetAt.Sub(now)
		seconds := int((remaining + time.Second - 1) / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		return false, seconds
	}
	return true, 0
}

// Middleware returns a gin handler enforcing the limit per client IP.
// Rejections carry a Retry-After header and a structured body.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip, _, _ := net.SplitHostPort(c.Request.RemoteAddr)
		if ip == "" {
			ip = c.Request.RemoteAddr
		}

		allowed, retryAfter := l.Admit(ip)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too Many Requests",
				"message":    "Rate limit exceeded. Please try again later.",
				"retryAfter": retryAfter,
			})
			return
		}
		c.Next()
	}
}

// sweep evicts expired entries every window duration until done is closed.
func (l *Limiter) sweep(done <-chan struct{}) {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for addr, entry := range l.entries {
				if now.After(entry.windowResetAt) {
					delete(l.entries, addr)
				}
			}
			l.mu.Unlock()
		case <-done:
			return
		}
	}
}
