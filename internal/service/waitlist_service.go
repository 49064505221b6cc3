package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

// WaitlistService records landing-page email signups. When a webhook URL is
// configured the signup is relayed there; otherwise it is logged so nothing
// is lost during local development.
type WaitlistService struct {
	webhookURL string
	httpClient *http.Client
	logger     domain.Logger
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(config domain.Config, logger domain.Logger) domain.WaitlistService {
	return &WaitlistService{
		webhookURL: config.GetWaitlistWebhookURL(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type waitlistPayload struct {
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}

// Signup validates the email and relays it to the configured webhook.
// Validation is deliberately shallow: presence and a literal "@".
func (s *WaitlistService) Signup(ctx context.Context, email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.NewValidationError("Invalid email")
	}

	if s.webhookURL == "" {
		s.logger.Info("New waitlist signup", "email", email)
		return nil
	}

	payload, err := json.Marshal(waitlistPayload{
		Email:     email,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return apperrors.NewInternalError("Failed to save email", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return apperrors.NewInternalError("Failed to save email", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Waitlist relay failed", err, "email", email)
		return apperrors.NewNetworkError("Failed to save email", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("webhook returned status %d", resp.StatusCode)
		s.logger.Error("Waitlist relay rejected", err, "email", email)
		return apperrors.NewNetworkError("Failed to save email", err)
	}

	s.logger.Info("Waitlist signup relayed", "email", email)
	return nil
}
