package handlers

import (
	"net/http"

	"github.com/pontopro/backend/internal/services"
)

const auditPageSize = 200

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// List returns the audit trail
// @Summary Audit log
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive filter on action, details or administrator"
// @Success 200 {array} models.AuditLog
// @Failure 500 {object} services.ErrorResponse
// @Router /audit-logs [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), r.URL.Query().Get("search"), auditPageSize)
	if err != nil {
		services.SendErrorResponse(w, "Failed to load audit log", http.StatusInternalServerError, nil)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
