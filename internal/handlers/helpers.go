package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"poseidon/internal/authz"
	apperrors "poseidon/internal/errors"
	"poseidon/internal/middleware"
	"poseidon/internal/validator"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

// ErrorResponse represents an error response. Record echoes the submitted
// payload when a write is rejected.
type ErrorResponse struct {
	Error  ErrorDetail `json:"error"`
	Record any         `json:"record,omitempty"`
}

// MessageResponse represents a response carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// getActor extracts the authenticated actor from the Gin context.
// Returns ErrUnauthorized if not present.
func getActor(c *gin.Context) (authz.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return authz.Actor{}, apperrors.ErrUnauthorized
	}
	return actor, nil
}

// parsePathID parses the :id path parameter. Range checks are left to the
// services so that 0 and negative ids follow their rules.
func parsePathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidArgument, "Invalid ID: "+c.Param("id"))
	}
	return id, nil
}

// respondWithError hands err to the error middleware. record, when not nil,
// is rendered back to the caller alongside the error.
func respondWithError(c *gin.Context, err error, record any) {
	if record != nil {
		middleware.KeepRecord(c, record)
	}
	_ = c.Error(err)
}

// bindJSON binds the request body into req and reports binding failures as
// validation errors.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondWithBindError(c, err, req)
		return false
	}
	return true
}

func respondWithBindError(c *gin.Context, err error, record any) {
	respondWithError(c, apperrors.Validation(validator.FromBinding(err)), record)
}
