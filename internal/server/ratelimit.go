package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rileyhilliard/widgetmon/internal/errors"
	"golang.org/x/time/rate"
)

// RateLimiter limits REST mutations per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing rps requests per second per IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(clientIP string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[clientIP]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, exists := rl.limiters[clientIP]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[clientIP] = limiter
	return limiter
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			abortWithError(c, http.StatusTooManyRequests, errRateLimited())
			return
		}
		c.Next()
	}
}

func errRateLimited() *errors.Error {
	return errors.New(errors.ErrServer, "Rate limit exceeded", "Slow down; raise server.rate or server.burst if this is expected")
}
