package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSubmissionLimiterWindow(t *testing.T) {
	limiter := NewSubmissionLimiter(15*time.Minute, 5)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		d := limiter.Check("1.2.3.4")
		if !d.Allowed {
			t.Fatalf("attempt %d should be admitted", i+1)
		}
		if d.Remaining != 5-(i+1) {
			t.Errorf("attempt %d: Remaining = %d, want %d", i+1, d.Remaining, 5-(i+1))
		}
	}

	rejected := limiter.Check("1.2.3.4")
	if rejected.Allowed {
		t.Fatal("sixth attempt should be rejected")
	}
	if rejected.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", rejected.Remaining)
	}
	wantReset := now.Add(15 * time.Minute)
	if !rejected.ResetAt.Equal(wantReset) {
		t.Errorf("ResetAt = %v, want %v", rejected.ResetAt, wantReset)
	}
}

func TestSubmissionLimiterRejectionDoesNotExtendWindow(t *testing.T) {
	limiter := NewSubmissionLimiter(15*time.Minute, 5)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := start
	limiter.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		limiter.Check("9.9.9.9")
	}

	now = start.Add(10 * time.Minute)
	rejected := limiter.Check("9.9.9.9")
	if rejected.Allowed {
		t.Fatal("expected rejection inside the window")
	}
	if !rejected.ResetAt.Equal(start.Add(15 * time.Minute)) {
		t.Errorf("rejection moved ResetAt to %v", rejected.ResetAt)
	}
}

func TestSubmissionLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewSubmissionLimiter(15*time.Minute, 5)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := start
	limiter.now = func() time.Time { return now }

	for i := 0; i < 6; i++ {
		limiter.Check("5.5.5.5")
	}

	now = start.Add(15*time.Minute + time.Second)
	d := limiter.Check("5.5.5.5")
	if !d.Allowed {
		t.Fatal("expected readmission after the window elapsed")
	}
	if d.Remaining != 4 {
		t.Errorf("fresh window Remaining = %d, want 4", d.Remaining)
	}
}

func TestSubmissionLimiterIsolatesClients(t *testing.T) {
	limiter := NewSubmissionLimiter(15*time.Minute, 5)
	for i := 0; i < 6; i++ {
		limiter.Check("1.1.1.1")
	}

	d := limiter.Check("2.2.2.2")
	if !d.Allowed || d.Remaining != 4 {
		t.Errorf("second client should have a fresh window: %+v", d)
	}
}

func TestSubmissionMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewSubmissionLimiter(15*time.Minute, 5)

	router := gin.New()
	router.POST("/api/budget", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	doPost := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/budget", nil)
		req.RemoteAddr = "7.7.7.7:1234"
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 5; i++ {
		w := doPost()
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
		if w.Header().Get("X-RateLimit-Limit") != "5" {
			t.Errorf("X-RateLimit-Limit = %q, want 5", w.Header().Get("X-RateLimit-Limit"))
		}
	}

	w := doPost()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("sixth request: status = %d, want 429", w.Code)
	}
	if w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", w.Header().Get("X-RateLimit-Remaining"))
	}
	if w.Header().Get("Retry-After") == "" || w.Header().Get("Retry-After") == "0" {
		t.Errorf("Retry-After = %q, want a positive value", w.Header().Get("Retry-After"))
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:5555"

	if got := ClientIP(c); got != "10.0.0.1" {
		t.Errorf("ClientIP = %q, want 10.0.0.1", got)
	}

	c.Request.Header.Set("X-Real-IP", "20.0.0.2")
	if got := ClientIP(c); got != "20.0.0.2" {
		t.Errorf("ClientIP = %q, want 20.0.0.2", got)
	}

	c.Request.Header.Set("X-Forwarded-For", "30.0.0.3, 20.0.0.2")
	if got := ClientIP(c); got != "30.0.0.3" {
		t.Errorf("ClientIP = %q, want 30.0.0.3", got)
	}
}
