package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"poseidon/internal/logger"
	"poseidon/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestLogging returns a Gin middleware that logs each request with a
// request ID, method, path, status code, latency, and client IP using Zap.
// A well-formed incoming X-Request-ID is kept; anything else is replaced.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.RequestID(c.GetHeader(requestIDHeader))
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if actor, ok := ActorFrom(c); ok {
			fields = append(fields, "actor", actor.Username)
		}
		logger.Get().Infow("request", fields...)
	}
}

// RequestID returns the identifier assigned by RequestLogging.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
