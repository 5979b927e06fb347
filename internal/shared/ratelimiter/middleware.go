package ratelimiter

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(c *gin.Context) string

// ClientIPKey keys requests by client IP.
func ClientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// ContextKey keys requests by a string value stored in the gin context, such as
// the authenticated subject, falling back to the client IP.
func ContextKey(name string) KeyFunc {
	return func(c *gin.Context) string {
		if v := c.GetString(name); v != "" {
			return v
		}
		return c.ClientIP()
	}
}

// Middleware rejects requests over the limit with 429.
// If the limiter itself fails the request is let through.
func Middleware(l Limiter, keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)
		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
