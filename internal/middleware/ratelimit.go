package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"serava-assistant/pkg/response"
)

// userLimiter keeps one token bucket per user id. Unauthenticated requests
// share a bucket keyed by client IP.
type userLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newUserLimiter(rps float64, burst int) *userLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &userLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (ul *userLimiter) get(key string) *rate.Limiter {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	if l, ok := ul.limiters[key]; ok {
		return l
	}
	l := rate.NewLimiter(ul.rps, ul.burst)
	ul.limiters[key] = l
	return l
}

// RateLimit rejects callers exceeding the per-user request budget.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := Scope(c).UserID
		if key == "" {
			key = c.GetHeader("X-User-ID")
		}
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiter.get(key).Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
