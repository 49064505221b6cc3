package handler

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

// UploadHandler handles the document intake routes.
type UploadHandler struct {
	uploadService domain.UploadService
	maxUploadSize int64
	logger        domain.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService domain.UploadService, maxUploadSize int64, logger domain.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// UploadDocument handles POST /upload: multipart form with a single "file"
// field. The flow is received -> validated -> extracted -> persisted ->
// responded, terminal at the first failure.
func (h *UploadHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "No file provided. Please upload a file.")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		writeFailure(w, http.StatusBadRequest, fmt.Sprintf(
			"File too large. Maximum size is %dMB. Your file is %dMB.",
			h.maxUploadSize/1024/1024,
			int64(math.Round(float64(header.Size)/1024/1024)),
		))
		return
	}

	// Strip any path components from the client-supplied name.
	fileName := strings.TrimSpace(filepath.Base(header.Filename))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		writeFailure(w, http.StatusBadRequest, "Invalid file name.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload body", err, "name", fileName)
		writeFailure(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	doc, err := h.uploadService.Upload(r.Context(), domain.PlaceholderUserID, &domain.FileUpload{
		Filename: fileName,
		MIMEType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Data:     data,
	})
	if err != nil {
		status := apperrors.GetStatusCode(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Upload failed", err, "name", fileName)
		}
		writeFailure(w, status, apperrors.GetMessage(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "Document uploaded successfully",
		"document": doc,
	})
}

// ListDocuments handles GET /upload: the current user's documents ordered
// newest-first. An empty library returns an empty array, not an error.
func (h *UploadHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.uploadService.ListDocuments(r.Context(), domain.PlaceholderUserID)
	if err != nil {
		h.logger.Error("Failed to list documents", err, "user_id", domain.PlaceholderUserID)
		writeFailure(w, http.StatusInternalServerError, "Failed to fetch documents.")
		return
	}

	if documents == nil {
		documents = make([]domain.DocumentSummary, 0)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"documents": documents,
		"count":     len(documents),
	})
}
