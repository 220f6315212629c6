// api/middleware/rate_limiter.go

package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/util"
)

// RateLimitConfig describes one route group's quota. Each group is an
// independent counter namespace.
type RateLimitConfig struct {
	Group  string
	Limit  int
	Window time.Duration
	// SkipSuccessful refunds the slot when the request finishes 2xx, so only
	// failed attempts count toward the quota (used on auth endpoints).
	SkipSuccessful bool
}

// RateLimiter enforces a fixed-window quota per (client address, route
// group). Counter-store failures fail open: a broken limiter must not take
// the API down with it.
func RateLimiter(store CounterStore, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", cfg.Group, c.ClientIP())
		count, err := store.Increment(c, key, cfg.Window)
		if err != nil {
			logger.Error("Rate limiting unavailable, allowing request",
				zap.Error(err),
				zap.String("group", cfg.Group),
				zap.String("ip", c.ClientIP()))
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Limit) {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("group", cfg.Group),
				zap.Int("limit", cfg.Limit),
				zap.Duration("window", cfg.Window))
			util.RespondError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()

		if cfg.SkipSuccessful && c.Writer.Status() < 300 {
			if err := store.Decrement(c, key); err != nil {
				logger.Error("Failed to refund rate limit slot",
					zap.Error(err),
					zap.String("group", cfg.Group))
			}
		}
	}
}
