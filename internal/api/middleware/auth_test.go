package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreSharedKeyAuth(t *testing.T) {
	var reached bool
	handler := PreSharedKeyAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name       string
		method     string
		key        string
		wantStatus int
		wantBody   string
	}{
		{"missing key", http.MethodPost, "", http.StatusUnauthorized, `{"error":"missing API key"}`},
		{"wrong key", http.MethodPost, "nope", http.StatusUnauthorized, `{"error":"invalid API key"}`},
		{"correct key", http.MethodPost, "secret", http.StatusOK, ""},
		{"preflight skips auth", http.MethodOptions, "", http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(tc.method, "/honeypot", nil)
			if tc.key != "" {
				req.Header.Set(APIKeyHeader, tc.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
				assert.False(t, reached, "handler must not run on rejected request")
			} else {
				assert.True(t, reached)
			}
		})
	}
}
