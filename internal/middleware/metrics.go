package middleware

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// APIKeyGuard validates the X-API-Key header against apiKey. An empty apiKey
// leaves the route open.
func APIKeyGuard(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or missing API key"))
			return
		}
		c.Next()
	}
}
