package service

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

const previewLength = 300

// UploadService sequences the intake pipeline for one request: validate the
// buffer, extract its text, persist the record, shape the response. Each step
// is strictly ordered; the first failure terminates the request. There is no
// retry and no partial persistence.
type UploadService struct {
	validator domain.FileValidator
	extractor domain.PDFExtractor
	repo      domain.DocumentRepository
	logger    domain.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(
	validator domain.FileValidator,
	extractor domain.PDFExtractor,
	repo domain.DocumentRepository,
	logger domain.Logger,
) domain.UploadService {
	return &UploadService{
		validator: validator,
		extractor: extractor,
		repo:      repo,
		logger:    logger,
	}
}

// Upload runs validation, extraction and persistence for a single file and
// returns the response payload. userID scopes the stored record; it is always
// supplied explicitly by the caller.
func (s *UploadService) Upload(ctx context.Context, userID string, upload *domain.FileUpload) (*domain.UploadedDocument, error) {
	result := s.validator.Validate(upload.Data, upload.Filename, upload.MIMEType)
	if !result.IsValid {
		return nil, apperrors.NewValidationError(result.FirstError())
	}

	fileType := fileTypeFromName(upload.Filename)
	if fileType != domain.FileTypePDF {
		// Validation admits docx so disguise checks still apply, but the
		// extraction stage handles PDF only for now.
		return nil, apperrors.NewProcessingError("DOCX text extraction is not supported yet. Please upload a PDF.", nil)
	}

	text, err := s.extractor.ExtractText(upload.Data)
	if err != nil {
		return nil, err
	}

	// Metadata is advisory; a failure here never blocks the upload.
	metadata, err := s.extractor.GetMetadata(upload.Data)
	if err != nil {
		s.logger.Warn("Failed to read PDF metadata", "name", upload.Filename, "error", err)
	}

	s.logger.Info("Processing PDF",
		"name", upload.Filename,
		"pages", metadata.Pages,
		"characters", utf8.RuneCountInString(text),
		"hash", result.FileHash,
	)

	record := &domain.DocumentInsert{
		UserID:    userID,
		Name:      upload.Filename,
		FileType:  fileType,
		Content:   text,
		CharCount: utf8.RuneCountInString(text),
	}

	doc, err := s.repo.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	return &domain.UploadedDocument{
		ID:        doc.ID,
		Name:      doc.Name,
		FileType:  doc.FileType,
		CharCount: doc.CharCount,
		Pages:     metadata.Pages,
		Preview:   makePreview(text),
		CreatedAt: doc.CreatedAt,
	}, nil
}

// ListDocuments returns the user's documents newest-first. An empty library
// is an empty slice, not an error.
func (s *UploadService) ListDocuments(ctx context.Context, userID string) ([]domain.DocumentSummary, error) {
	return s.repo.ListByUser(ctx, userID)
}

// makePreview returns the first 300 characters of the text. The ellipsis is
// appended only when something was actually cut off.
func makePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

func fileTypeFromName(filename string) domain.FileType {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "docx":
		return domain.FileTypeDOCX
	case "txt":
		return domain.FileTypeTXT
	default:
		return domain.FileTypePDF
	}
}
