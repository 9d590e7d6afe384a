package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/logger"
)

const recordKey = "submittedRecord"

// KeepRecord attaches the record under edit to the request so that a failed
// operation renders it back to the caller instead of discarding it.
func KeepRecord(c *gin.Context, record any) {
	c.Set(recordKey, record)
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code, message and field details; unexpected errors are logged and
// return a generic internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			// Unexpected error: log full details, return generic message
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"request_id", RequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"request_id", RequestID(c),
				"path", c.Request.URL.Path,
			)
		}

		body := gin.H{"error": errorBody(appErr)}
		if record, ok := c.Get(recordKey); ok {
			body["record"] = record
		}
		c.JSON(appErr.StatusCode, body)
	}
}

func errorBody(appErr *apperrors.AppError) gin.H {
	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	return body
}
