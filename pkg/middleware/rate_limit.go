package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
)

// MemoryLimiter is a per-key in-memory token bucket.
type MemoryLimiter struct {
	rps   float64
	burst int
	store sync.Map // map[string]*rate.Limiter
}

func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{rps: rps, burst: burst}
}

// limiter returns (and lazily creates) the bucket for key.
func (m *MemoryLimiter) limiter(key string) *rate.Limiter {
	if v, ok := m.store.Load(key); ok {
		return v.(*rate.Limiter)
	}
	v, _ := m.store.LoadOrStore(key, rate.NewLimiter(rate.Limit(m.rps), m.burst))
	return v.(*rate.Limiter)
}

// Allow consumes one token for key.
func (m *MemoryLimiter) Allow(key string) bool {
	return m.limiter(key).Allow()
}

// RateLimitMiddleware enforces a token bucket per preview subject or client
// IP. rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	lim := NewMemoryLimiter(rps, burst)
	return func(c *gin.Context) {
		if !lim.Allow(limitKey(c)) {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}
