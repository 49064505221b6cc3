package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"
)

const testMaxUploadSize = 4 * 1024 * 1024

// Mock implementations for handler testing

type MockUploadService struct {
	uploaded   *domain.UploadedDocument
	uploadErr  error
	lastUserID string
	lastUpload *domain.FileUpload
	listed     []domain.DocumentSummary
	listErr    error
}

func (m *MockUploadService) Upload(ctx context.Context, userID string, upload *domain.FileUpload) (*domain.UploadedDocument, error) {
	m.lastUserID = userID
	m.lastUpload = upload
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return m.uploaded, nil
}

func (m *MockUploadService) ListDocuments(ctx context.Context, userID string) ([]domain.DocumentSummary, error) {
	m.lastUserID = userID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listed, nil
}

// multipartBody builds a multipart request body with a single "file" field.
func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", rr.Body.String(), err)
	}
	return payload
}

func TestUploadHandler_NoFile(t *testing.T) {
	handler := NewUploadHandler(&MockUploadService{}, testMaxUploadSize, NewMockHandlerLogger())

	req := httptest.NewRequest("POST", "/api/v1/upload", strings.NewReader("no multipart here"))
	rr := httptest.NewRecorder()
	handler.UploadDocument(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	payload := decodeBody(t, rr)
	if payload["success"] != false {
		t.Fatal("expected success=false")
	}
	if !strings.Contains(payload["error"].(string), "No file provided") {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}

func TestUploadHandler_RouteSizeCap(t *testing.T) {
	handler := NewUploadHandler(&MockUploadService{}, testMaxUploadSize, NewMockHandlerLogger())

	// 5 MB declared as PDF against the 4 MB route cap.
	content := bytes.Repeat([]byte{0x25}, 5*1024*1024)
	body, contentType := multipartBody(t, "big.pdf", "application/pdf", content)

	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.UploadDocument(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	msg := decodeBody(t, rr)["error"].(string)
	if !strings.Contains(msg, "Maximum size is 4MB") {
		t.Fatalf("expected the 4MB limit in the message, got %q", msg)
	}
	if !strings.Contains(msg, "5MB") {
		t.Fatalf("expected the actual size in the message, got %q", msg)
	}
}

func TestUploadHandler_Success(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	service := &MockUploadService{uploaded: &domain.UploadedDocument{
		ID:        "doc-1",
		Name:      "report.pdf",
		FileType:  domain.FileTypePDF,
		CharCount: 1234,
		Pages:     7,
		Preview:   "some preview",
		CreatedAt: createdAt,
	}}
	handler := NewUploadHandler(service, testMaxUploadSize, NewMockHandlerLogger())

	body, contentType := multipartBody(t, "report.pdf", "application/pdf", []byte("%PDF-1.4 content"))
	req := httptest.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.UploadDocument(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	payload := decodeBody(t, rr)
	if payload["success"] != true {
		t.Fatal("expected success=true")
	}
	doc := payload["document"].(map[string]interface{})
	if doc["id"] != "doc-1" || doc["fileType"] != "pdf" {
		t.Fatalf("unexpected document payload: %v", doc)
	}
	if doc["charCount"].(float64) != 1234 || doc["pages"].(float64) != 7 {
		t.Fatalf("unexpected counts in payload: %v", doc)
	}

	// The placeholder identity is threaded explicitly into the service call.
	if service.lastUserID != domain.PlaceholderUserID {
		t.Fatalf("expected placeholder user id, got %q", service.lastUserID)
	}
	if service.lastUpload.MIMEType != "application/pdf" {
		t.Fatalf("expected declared MIME type to be forwarded, got %q", service.lastUpload.MIMEType)
	}
}

func TestUploadHandler_ServiceErrorsMapped(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.NewValidationError("Invalid file type: extension \"txt\" is not supported. Only PDF and DOCX files are accepted."), 400},
		{"processing", apperrors.NewProcessingError("No text found in PDF. This might be an image-only PDF or corrupted file.", nil), 422},
		{"internal", apperrors.NewInternalError("Failed to save document. Please try again.", nil), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewUploadHandler(&MockUploadService{uploadErr: tc.err}, testMaxUploadSize, NewMockHandlerLogger())

			body, contentType := multipartBody(t, "report.pdf", "application/pdf", []byte("%PDF-1.4"))
			req := httptest.NewRequest("POST", "/api/v1/upload", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()
			handler.UploadDocument(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			payload := decodeBody(t, rr)
			if payload["success"] != false {
				t.Fatal("expected success=false")
			}
		})
	}
}

func TestUploadHandler_ListDocuments(t *testing.T) {
	service := &MockUploadService{listed: []domain.DocumentSummary{
		{ID: "b", Name: "second.pdf", FileType: domain.FileTypePDF, CharCount: 20},
		{ID: "a", Name: "first.pdf", FileType: domain.FileTypePDF, CharCount: 10},
	}}
	handler := NewUploadHandler(service, testMaxUploadSize, NewMockHandlerLogger())

	req := httptest.NewRequest("GET", "/api/v1/upload", nil)
	rr := httptest.NewRecorder()
	handler.ListDocuments(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	payload := decodeBody(t, rr)
	if payload["count"].(float64) != 2 {
		t.Fatalf("expected count 2, got %v", payload["count"])
	}
	docs := payload["documents"].([]interface{})
	if docs[0].(map[string]interface{})["id"] != "b" {
		t.Fatalf("expected repository order preserved, got %v", docs)
	}
}

func TestUploadHandler_ListDocumentsEmpty(t *testing.T) {
	handler := NewUploadHandler(&MockUploadService{}, testMaxUploadSize, NewMockHandlerLogger())

	req := httptest.NewRequest("GET", "/api/v1/upload", nil)
	rr := httptest.NewRecorder()
	handler.ListDocuments(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	// Empty library is [] with count 0, not an error and not null.
	if !strings.Contains(rr.Body.String(), `"documents":[]`) {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
	payload := decodeBody(t, rr)
	if payload["count"].(float64) != 0 {
		t.Fatalf("expected count 0, got %v", payload["count"])
	}
}

func TestUploadHandler_ListDocumentsFailure(t *testing.T) {
	service := &MockUploadService{listErr: apperrors.NewInternalError("Failed to fetch documents.", nil)}
	handler := NewUploadHandler(service, testMaxUploadSize, NewMockHandlerLogger())

	req := httptest.NewRequest("GET", "/api/v1/upload", nil)
	rr := httptest.NewRecorder()
	handler.ListDocuments(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	payload := decodeBody(t, rr)
	if payload["error"] != "Failed to fetch documents." {
		t.Fatalf("unexpected error message: %v", payload["error"])
	}
}
