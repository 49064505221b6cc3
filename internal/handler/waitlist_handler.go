package handler

import (
	"encoding/json"
	"net/http"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

// WaitlistHandler handles landing-page waitlist signups.
type WaitlistHandler struct {
	waitlistService domain.WaitlistService
	logger          domain.Logger
}

// NewWaitlistHandler creates a new waitlist handler
func NewWaitlistHandler(waitlistService domain.WaitlistService, logger domain.Logger) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistService: waitlistService,
		logger:          logger,
	}
}

type waitlistRequest struct {
	Email string `json:"email"`
}

// Signup handles POST /waitlist with a JSON {email} body.
func (h *WaitlistHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req waitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.waitlistService.Signup(r.Context(), req.Email); err != nil {
		status := apperrors.GetStatusCode(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Waitlist signup failed", err)
		}
		writeError(w, status, apperrors.GetMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
