package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryLimiterWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	l := newMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	if !l.allow("1.1.1.1") || !l.allow("1.1.1.1") {
		t.Fatalf("first two requests should pass")
	}
	if l.allow("1.1.1.1") {
		t.Fatalf("third request in window should be blocked")
	}
	if !l.allow("2.2.2.2") {
		t.Fatalf("other clients have their own window")
	}

	now = now.Add(2 * time.Minute)
	if !l.allow("1.1.1.1") {
		t.Fatalf("new window should reset the count")
	}
	if _, ok := l.clients["2.2.2.2"]; ok {
		t.Fatalf("expired client should have been swept")
	}
}

func TestSimpleRateLimitHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", SimpleRateLimit(1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("status codes = %v; want [204 429]", codes)
	}
}

func TestRequestLogSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLog())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("request id = %q; want abc", got)
	}
}
