package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/ratelimit"
)

// RateLimit rejects callers over their per-window allowance with 429. Limiter
// errors let the request through.
func RateLimit(log *logger.Logger, limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			if log != nil {
				log.Warn("rate limiter unavailable", "scope", scope, "error", err)
			}
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
			return
		}
		c.Next()
	}
}
