package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stylehaven/storefront/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func TestCartSessionMiddlewareIssuesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.CartConfig{CookieName: "sth_cart_session", SessionTTLDay: 30}
	r := gin.New()
	r.Use(CartSessionMiddleware(cfg))
	r.GET("/cart", func(c *gin.Context) {
		value, _ := c.Get(cartSessionContextKey)
		c.JSON(http.StatusOK, gin.H{"session_id": value})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	var issued string
	for _, cookie := range cookies {
		if cookie.Name == "sth_cart_session" {
			issued = cookie.Value
		}
	}
	if issued == "" {
		t.Fatalf("middleware should issue a session cookie")
	}
	if _, err := uuid.Parse(issued); err != nil {
		t.Fatalf("issued session id should be a uuid, got %s", issued)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] != issued {
		t.Fatalf("context session id %s should match cookie %s", resp["session_id"], issued)
	}
}

func TestCartSessionMiddlewareReusesValidCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.CartConfig{CookieName: "sth_cart_session", SessionTTLDay: 30}
	r := gin.New()
	r.Use(CartSessionMiddleware(cfg))
	r.GET("/cart", func(c *gin.Context) {
		value, _ := c.Get(cartSessionContextKey)
		c.JSON(http.StatusOK, gin.H{"session_id": value})
	})

	existing := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "sth_cart_session", Value: existing})
	r.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] != existing {
		t.Fatalf("valid cookie should be reused, want %s got %s", existing, resp["session_id"])
	}
}

func TestCartSessionMiddlewareRejectsBogusCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.CartConfig{CookieName: "sth_cart_session", SessionTTLDay: 30}
	r := gin.New()
	r.Use(CartSessionMiddleware(cfg))
	r.GET("/cart", func(c *gin.Context) {
		value, _ := c.Get(cartSessionContextKey)
		c.JSON(http.StatusOK, gin.H{"session_id": value})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "sth_cart_session", Value: "not-a-uuid"})
	r.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["session_id"] == "not-a-uuid" || resp["session_id"] == "" {
		t.Fatalf("bogus cookie should be replaced, got %s", resp["session_id"])
	}
}
