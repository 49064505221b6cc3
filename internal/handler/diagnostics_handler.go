package handler

import (
	"net/http"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

// DiagnosticsHandler exposes the backend connectivity check.
type DiagnosticsHandler struct {
	diagnosticsService domain.DiagnosticsService
	logger             domain.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(diagnosticsService domain.DiagnosticsService, logger domain.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		diagnosticsService: diagnosticsService,
		logger:             logger,
	}
}

// Check handles GET /diagnostics.
func (h *DiagnosticsHandler) Check(w http.ResponseWriter, r *http.Request) {
	tables, err := h.diagnosticsService.Check(r.Context())
	if err != nil {
		writeFailure(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Database connection successful!",
		"tables":  tables,
	})
}
