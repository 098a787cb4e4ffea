package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"scambait-lab/internal/config"
)

// RateLimiter returns middleware implementing a per-client token bucket.
// Buckets live in process memory; a restart resets them, which matches the
// rest of this service's process-scoped state.
func RateLimiter(cfg config.RateLimitConfig) func(next http.Handler) http.Handler {
	limiter := newTokenBuckets(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip rate limiting for OPTIONS
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			clientID := getClientID(r)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))

			if !limiter.allow(clientID) {
				w.Header().Set("Retry-After", "60")
				http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type bucket struct {
	tokens   float64
	lastFill time.Time
}

type tokenBuckets struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64 // tokens per second
	burst   float64
}

func newTokenBuckets(cfg config.RateLimitConfig) *tokenBuckets {
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return &tokenBuckets{
		buckets: make(map[string]*bucket),
		rate:    float64(cfg.RequestsPerMinute) / 60.0,
		burst:   float64(burst),
	}
}

func (t *tokenBuckets) allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: t.burst, lastFill: now}
		t.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastFill).Seconds() * t.rate
	if b.tokens > t.burst {
		b.tokens = t.burst
	}
	b.lastFill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// getClientID returns a unique identifier for the client
func getClientID(r *http.Request) string {
	// First try the API key
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return fmt.Sprintf("key:%s", key)
	}

	// Fall back to IP address
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.Header.Get("X-Real-IP")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}

	return fmt.Sprintf("ip:%s", ip)
}
