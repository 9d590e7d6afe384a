package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/services"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

type auditQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// List handles GET /audit-logs
// @Summary     Recent audit entries
// @Tags        audit
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum entries (1-500)"
// @Success     200 {object} map[string]interface{}
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Router      /audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	var q auditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidArgument, "limit must be between 1 and 500"), nil)
		return
	}

	entries, err := h.auditService.FindRecent(q.Limit)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}
