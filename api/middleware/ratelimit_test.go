package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(rps float64, burst int, now *time.Time) *RateLimiter {
	rl := NewRateLimiter(rps, burst)
	rl.now = func() time.Time { return *now }
	return rl
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC)
	rl := newTestLimiter(1, 3, &now)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// another client has its own bucket
	assert.True(t, rl.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Evict(t *testing.T) {
	now := time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC)
	rl := newTestLimiter(1, 1, &now)

	rl.Allow("idle")
	now = now.Add(5 * time.Minute)
	rl.Allow("active")
	now = now.Add(6 * time.Minute)

	rl.Evict()

	assert.NotContains(t, rl.clients, "idle")
	assert.Contains(t, rl.clients, "active")
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	assert.Equal(t, 1, NewRateLimiter(10, 20).RetryAfter())
	assert.Equal(t, 4, NewRateLimiter(0.25, 1).RetryAfter())
	assert.Equal(t, 1, NewRateLimiter(0, 1).RetryAfter())
}

func TestRateLimitMiddleware_AllowsRequestsUnderLimit(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(1, 5))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/topics", nil)
		req.RemoteAddr = "192.168.1.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitMiddleware_Returns429ForExceededLimit(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(0.5, 2))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/topics", nil)
		req.RemoteAddr = "192.168.1.1:1234"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}

func TestRateLimitMiddleware_UsesIPAddressForLimiting(t *testing.T) {
	limiter := NewRateLimiter(0.1, 1)
	limiter.TrustProxyHeaders = true
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/discover", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1"))
	assert.Equal(t, http.StatusOK, send("203.0.113.2"))
}

func TestRateLimitMiddleware_IgnoresForwardingHeadersByDefault(t *testing.T) {
	handler := RateLimitMiddleware(NewRateLimiter(0.1, 1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/discover", nil)
		req.RemoteAddr = "198.51.100.9:4321"
		req.Header.Set("X-Forwarded-For", forwarded)
		req.Header.Set("X-Real-IP", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.3"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		trusted  bool
		expected string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, "10.0.0.2:80", true, "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.7"}, "10.0.0.2:80", true, "203.0.113.7"},
		{"untrusted forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.1"}, "10.0.0.2:80", false, "10.0.0.2"},
		{"untrusted real ip", map[string]string{"X-Real-IP": "203.0.113.7"}, "10.0.0.2:80", false, "10.0.0.2"},
		{"remote addr", nil, "192.168.1.1:1234", true, "192.168.1.1"},
		{"remote addr without port", nil, "192.168.1.1", false, "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}
