package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const frontendURL = "http://localhost:5173"

func corsHandler() http.Handler {
	mh := NewMiddlewareHandler(zerolog.Nop(), frontendURL)
	return mh.Cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCorsAllowOriginHeader(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{name: "configured frontend origin", origin: frontendURL, want: frontendURL},
		{name: "chrome extension origin", origin: "chrome-extension://abcdef", want: "chrome-extension://abcdef"},
		{name: "firefox extension origin", origin: "moz-extension://abcdef", want: "moz-extension://abcdef"},
		{name: "unknown origin gets the default", origin: "https://evil.example.com", want: frontendURL},
		{name: "no origin header", origin: "", want: frontendURL},
	}

	h := corsHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCorsPreflight(t *testing.T) {
	h := corsHandler()

	req := httptest.NewRequest(http.MethodOptions, "/api/bookmarks", nil)
	req.Header.Set("Origin", frontendURL)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, frontendURL, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Zero(t, rr.Body.Len())
}

func TestSecurityHeaders(t *testing.T) {
	mh := NewMiddlewareHandler(zerolog.Nop(), frontendURL)
	h := mh.Security(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}
