package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/markethub-api/internal/config"

	"github.com/gin-gonic/gin"
)

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowedOrigins   []string
		allowCredentials bool
		want             string
	}{
		{
			name:           "wildcard without credentials",
			origin:         "https://shop.example.com",
			allowedOrigins: []string{"*"},
			want:           "*",
		},
		{
			name:             "wildcard with credentials echoes the origin",
			origin:           "https://shop.example.com",
			allowedOrigins:   []string{"*"},
			allowCredentials: true,
			want:             "https://shop.example.com",
		},
		{
			name:           "listed origin is echoed",
			origin:         "https://shop.example.com",
			allowedOrigins: []string{"https://admin.example.com", "https://shop.example.com"},
			want:           "https://shop.example.com",
		},
		{
			name:           "origin match is case insensitive",
			origin:         "https://Shop.Example.com",
			allowedOrigins: []string{"https://shop.example.com"},
			want:           "https://Shop.Example.com",
		},
		{
			name:           "unlisted origin is refused",
			origin:         "https://evil.example.com",
			allowedOrigins: []string{"https://shop.example.com"},
			want:           "",
		},
		{
			name:           "empty origin with explicit list",
			origin:         "",
			allowedOrigins: []string{"https://shop.example.com"},
			want:           "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveAllowedOrigin(tc.origin, tc.allowedOrigins, tc.allowCredentials)
			if got != tc.want {
				t.Fatalf("resolveAllowedOrigin want %q got %q", tc.want, got)
			}
		})
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(config.CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}}))
	handlerRan := false
	r.POST("/api/orders", func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status want 204 got %d", w.Code)
	}
	if handlerRan {
		t.Fatalf("preflight must not reach the handler")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://shop.example.com" {
		t.Fatalf("allow-origin header missing: %v", w.Header())
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Fatalf("allow-methods header missing POST: %v", w.Header())
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	// generated when absent
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("response should carry a generated request id")
	}
	if w.Body.String() != generated {
		t.Fatalf("context id %q should match header %q", w.Body.String(), generated)
	}

	// echoed when the client supplies one
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "client-supplied-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) != "client-supplied-id" {
		t.Fatalf("inbound request id not echoed: %q", w.Header().Get(requestIDHeader))
	}
}

func TestRateLimitMiddlewarePassThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rule := RateLimitRule{Prefix: "login", WindowSeconds: 60, MaxRequests: 1}
	r.POST("/login", RateLimitMiddleware(nil, rule, KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: want 200 without a redis client, got %d", i, w.Code)
		}
	}
}

func TestKeyByIPAndJSONFieldKeepsBodyReadable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keyFunc := KeyByIPAndJSONField("email")

	r := gin.New()
	var key, echoedEmail string
	r.POST("/login", func(c *gin.Context) {
		key = keyFunc(c)
		var payload struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			t.Fatalf("body was consumed by the key func: %v", err)
		}
		echoedEmail = payload.Email
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"  User@Example.COM "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.HasPrefix(key, "user@example.com|") {
		t.Fatalf("key should start with the lowercased email, got %q", key)
	}
	if echoedEmail != "  User@Example.COM " {
		t.Fatalf("handler should still see the original body, got %q", echoedEmail)
	}
}
