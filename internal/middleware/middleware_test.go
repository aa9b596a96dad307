package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"email-task-assistant/config"
	"email-task-assistant/pkg/log"
	"email-task-assistant/pkg/scope"
)

func newTestMiddleware(t *testing.T, rl config.RateLimitConfig) (Middleware, scope.Manager) {
	t.Helper()
	jwt, err := scope.New("secret", "test", time.Hour)
	if err != nil {
		t.Fatalf("scope.New() error = %v", err)
	}
	return New(log.NewNop(), jwt, rl, []string{"https://mail.google.com"}), jwt
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	r.Any("/x", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	mw, jwt := newTestMiddleware(t, config.RateLimitConfig{})
	token, _, _ := jwt.Issue("u1", "a@example.com")
	r := newRouter(mw.Auth())

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid token", "Bearer " + token, http.StatusOK, "u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	mw, _ := newTestMiddleware(t, config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, MaxTrackedUsers: 10})
	r := newRouter(mw.RateLimit())

	codes := make([]int, 0, 2)
	for range 2 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429]", codes)
	}

	disabled, _ := newTestMiddleware(t, config.RateLimitConfig{Enabled: false})
	r = newRouter(disabled.RateLimit())
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("disabled limiter returned %d", w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	mw, _ := newTestMiddleware(t, config.RateLimitConfig{})
	r := newRouter(mw.CORS())

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"configured origin", http.MethodGet, "https://mail.google.com", http.StatusOK, "https://mail.google.com"},
		{"extension origin", http.MethodGet, "chrome-extension://abc", http.StatusOK, "chrome-extension://abc"},
		{"unknown origin", http.MethodGet, "https://evil.example", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "https://mail.google.com", http.StatusNoContent, "https://mail.google.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	mw, _ := newTestMiddleware(t, config.RateLimitConfig{})

	var seen any
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", mw.RequestID(), func(c *gin.Context) {
		seen = c.Request.Context().Value(log.RequestIDKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) != "req-42" || seen != "req-42" {
		t.Errorf("header = %q, ctx = %v", w.Header().Get(RequestIDHeader), seen)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(context.Background()))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("generated request id missing")
	}
}
