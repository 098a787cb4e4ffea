package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"scambait-lab/internal/config"
)

func TestRateLimiterBurstThenDeny(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, BurstSize: 3}
	handler := RateLimiter(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(key string) int {
		req := httptest.NewRequest(http.MethodPost, "/honeypot", nil)
		req.Header.Set(APIKeyHeader, key)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("client-a"), "request %d within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, do("client-a"))

	// buckets are per client
	assert.Equal(t, http.StatusOK, do("client-b"))
}

func TestRateLimiterSetsHeaders(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, BurstSize: 1}
	handler := RateLimiter(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/honeypot", nil)
	req.Header.Set(APIKeyHeader, "client-c")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}
