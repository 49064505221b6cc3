package domain

import "context"

// FileValidator decides whether an uploaded buffer is acceptable based on
// size, extension, declared MIME type and binary signature.
type FileValidator interface {
	Validate(buffer []byte, filename, mimeType string) *FileValidationResult
}

// PDFExtractor produces normalized plain text and advisory metadata from a
// validated PDF buffer.
type PDFExtractor interface {
	ExtractText(buffer []byte) (string, error)
	GetMetadata(buffer []byte) (PDFMetadata, error)
}

// DocumentRepository defines persistence operations for documents. Calls are
// scoped by an explicit user id supplied by the caller; the implementation
// runs with elevated credentials until the identity layer exists.
type DocumentRepository interface {
	Insert(ctx context.Context, record *DocumentInsert) (*Document, error)
	ListByUser(ctx context.Context, userID string) ([]DocumentSummary, error)
}

// DiagnosticsRepository verifies connectivity to the backing tables.
type DiagnosticsRepository interface {
	CheckTables(ctx context.Context) (map[string]string, error)
}

// UploadService sequences the intake pipeline: validate, extract, persist,
// shape the response.
type UploadService interface {
	Upload(ctx context.Context, userID string, upload *FileUpload) (*UploadedDocument, error)
	ListDocuments(ctx context.Context, userID string) ([]DocumentSummary, error)
}

// WaitlistService records landing-page signups.
type WaitlistService interface {
	Signup(ctx context.Context, email string) error
}

// DiagnosticsService reports backend connectivity.
type DiagnosticsService interface {
	Check(ctx context.Context) (map[string]string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxUploadSize() int64
	GetMaxFileSize() int64
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseAnonKey() string
	GetSupabaseServiceRoleKey() string
	GetWaitlistWebhookURL() string
}
