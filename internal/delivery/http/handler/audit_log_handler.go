package handler

import (
	"net/http"
	"strconv"

	"clinic-management-system/internal/usecase"
	"clinic-management-system/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListAuditLogs returns the newest audit entries. Admin only.
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	logs, err := h.auditLogUsecase.ListRecent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Server error")
		return
	}

	response.JSON(w, http.StatusOK, logs)
}
