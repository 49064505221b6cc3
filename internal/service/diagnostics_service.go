package service

import (
	"context"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

// DiagnosticsService reports whether the backing tables are reachable.
type DiagnosticsService struct {
	repo   domain.DiagnosticsRepository
	logger domain.Logger
}

// NewDiagnosticsService creates a new diagnostics service
func NewDiagnosticsService(repo domain.DiagnosticsRepository, logger domain.Logger) domain.DiagnosticsService {
	return &DiagnosticsService{repo: repo, logger: logger}
}

// Check probes the backing tables and returns their connection status.
func (s *DiagnosticsService) Check(ctx context.Context) (map[string]string, error) {
	tables, err := s.repo.CheckTables(ctx)
	if err != nil {
		s.logger.Error("Database diagnostics failed", err)
		return nil, apperrors.NewInternalError("Database connection failed", err)
	}
	return tables, nil
}
