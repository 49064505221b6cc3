package config

import (
	"doc-intake-server/internal/domain"
	"doc-intake-server/internal/repository"
	"doc-intake-server/internal/service"
	"doc-intake-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config             domain.Config
	Logger             domain.Logger
	SupabaseClient     domain.SupabaseClient
	DocumentRepository domain.DocumentRepository
	UploadService      domain.UploadService
	WaitlistService    domain.WaitlistService
	DiagnosticsService domain.DiagnosticsService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// The Supabase client is constructed here and handed only to the
	// repositories; the elevated tier never reaches handlers directly.
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Warn("Supabase client not initialized; persistence calls will fail", "error", err)
	}

	documentRepo := repository.NewSupabaseDocumentRepository(supabaseClient, appLogger)
	diagnosticsRepo := repository.NewSupabaseDiagnosticsRepository(supabaseClient, appLogger)

	validator := service.NewFileValidator(config.GetMaxFileSize())
	extractor := service.NewPDFExtractor(appLogger)

	return &Container{
		Config:             config,
		Logger:             appLogger,
		SupabaseClient:     supabaseClient,
		DocumentRepository: documentRepo,
		UploadService:      service.NewUploadService(validator, extractor, documentRepo, appLogger),
		WaitlistService:    service.NewWaitlistService(config, appLogger),
		DiagnosticsService: service.NewDiagnosticsService(diagnosticsRepo, appLogger),
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
