package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdmissionDecision is the outcome of a single admission check.
type AdmissionDecision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type submissionWindow struct {
	count   int
	resetAt time.Time
}

// SubmissionLimiter admits a bounded number of submissions per client within
// a fixed window. Counts live in process memory only, so a restart clears
// them.
type SubmissionLimiter struct {
	mu      sync.Mutex
	windows map[string]*submissionWindow
	window  time.Duration
	max     int
	now     func() time.Time
}

func NewSubmissionLimiter(window time.Duration, max int) *SubmissionLimiter {
	return &SubmissionLimiter{
		windows: make(map[string]*submissionWindow),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// Check counts one attempt for id. An admitted attempt within a live window
// increments its count; a rejected attempt leaves the window untouched, so
// hammering the endpoint does not extend the block.
func (l *SubmissionLimiter) Check(id string) AdmissionDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.windows[id]
	if !exists || now.After(w.resetAt) {
		w = &submissionWindow{count: 1, resetAt: now.Add(l.window)}
		l.windows[id] = w
		return AdmissionDecision{Allowed: true, Remaining: l.max - 1, ResetAt: w.resetAt}
	}

	if w.count >= l.max {
		return AdmissionDecision{Allowed: false, Remaining: 0, ResetAt: w.resetAt}
	}

	w.count++
	return AdmissionDecision{Allowed: true, Remaining: l.max - w.count, ResetAt: w.resetAt}
}

// Middleware enforces the submission window per client IP and exposes the
// remaining budget through response headers.
func (l *SubmissionLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ClientIP(c)
		decision := l.Check(ip)

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			retryAfter := int(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			zap.L().Warn("submission rejected, window exhausted",
				zap.String("ip", ip),
				zap.Time("resetAt", decision.ResetAt))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiadas solicitudes. Inténtalo de nuevo más tarde.",
			})
			return
		}
		c.Next()
	}
}
