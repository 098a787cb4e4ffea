package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is the inbound header carrying the pre-shared key.
const APIKeyHeader = "X-API-Key"

// PreSharedKeyAuth returns middleware that validates the X-API-Key header
// against the configured pre-shared key. Requests with a missing or wrong
// key are rejected before the honeypot core is invoked.
func PreSharedKeyAuth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip auth for OPTIONS requests (CORS preflight)
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				writeUnauthorized(w, "missing API key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				writeUnauthorized(w, "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
