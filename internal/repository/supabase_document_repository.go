package repository

import (
	"context"
	"encoding/json"
	"time"

	"doc-intake-server/internal/domain"
	apperrors "doc-intake-server/pkg/errors"

	"github.com/supabase-community/postgrest-go"
)

const documentsTable = "documents"

// SupabaseDocumentRepository implements the domain.DocumentRepository
// interface. All calls run on the elevated client and are scoped by an
// explicit user_id filter; backend errors are logged here and collapsed to
// generic messages before they reach a handler.
type SupabaseDocumentRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseDocumentRepository creates a new Supabase document repository
func NewSupabaseDocumentRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.DocumentRepository {
	return &SupabaseDocumentRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Insert stores a new document row and returns it with the backend-generated
// id and timestamps.
func (r *SupabaseDocumentRepository) Insert(ctx context.Context, record *domain.DocumentInsert) (*domain.Document, error) {
	client := r.supabaseClient.Elevated()
	if client == nil {
		r.logger.Error("Document insert attempted without initialized client", nil, "user_id", record.UserID)
		return nil, apperrors.NewInternalError("Failed to save document. Please try again.", nil)
	}

	row := map[string]interface{}{
		"user_id":    record.UserID,
		"name":       record.Name,
		"file_type":  string(record.FileType),
		"content":    record.Content,
		"char_count": record.CharCount,
	}

	// Request "representation" so PostgREST returns the inserted row.
	data, _, err := client.From(documentsTable).
		Insert(row, false, "", "representation", "").
		ExecuteWithContext(ctx)
	if err != nil {
		r.logger.Error("Failed to insert document in Supabase", err,
			"user_id", record.UserID,
			"name", record.Name,
			"char_count", record.CharCount,
		)
		return nil, apperrors.NewInternalError("Failed to save document. Please try again.", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		r.logger.Error("Failed to unmarshal insert response", err, "user_id", record.UserID)
		return nil, apperrors.NewInternalError("Failed to save document. Please try again.", err)
	}
	if len(rows) == 0 {
		r.logger.Error("Insert returned no row", nil, "user_id", record.UserID)
		return nil, apperrors.NewInternalError("Failed to save document. Please try again.", nil)
	}

	doc := mapToDocument(rows[0])
	r.logger.Info("Document created", "id", doc.ID, "user_id", doc.UserID, "char_count", doc.CharCount)
	return doc, nil
}

// ListByUser retrieves a user's document summaries ordered by creation time,
// most recent first. No documents is an empty slice, not an error.
func (r *SupabaseDocumentRepository) ListByUser(ctx context.Context, userID string) ([]domain.DocumentSummary, error) {
	client := r.supabaseClient.Elevated()
	if client == nil {
		r.logger.Error("Document listing attempted without initialized client", nil, "user_id", userID)
		return nil, apperrors.NewInternalError("Failed to fetch documents.", nil)
	}

	data, _, err := client.From(documentsTable).
		Select("id, name, file_type, char_count, created_at, updated_at", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteWithContext(ctx)
	if err != nil {
		r.logger.Error("Failed to fetch documents from Supabase", err, "user_id", userID)
		return nil, apperrors.NewInternalError("Failed to fetch documents.", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		r.logger.Error("Failed to unmarshal listing response", err, "user_id", userID)
		return nil, apperrors.NewInternalError("Failed to fetch documents.", err)
	}

	summaries := make([]domain.DocumentSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.DocumentSummary{
			ID:        getString(row, "id"),
			Name:      getString(row, "name"),
			FileType:  domain.FileType(getString(row, "file_type")),
			CharCount: getInt(row, "char_count"),
			CreatedAt: getTime(row, "created_at"),
			UpdatedAt: getTime(row, "updated_at"),
		})
	}

	return summaries, nil
}

// mapToDocument converts a PostgREST row to a Document struct
func mapToDocument(row map[string]interface{}) *domain.Document {
	return &domain.Document{
		ID:        getString(row, "id"),
		UserID:    getString(row, "user_id"),
		Name:      getString(row, "name"),
		FileType:  domain.FileType(getString(row, "file_type")),
		Content:   getString(row, "content"),
		CharCount: getInt(row, "char_count"),
		CreatedAt: getTime(row, "created_at"),
		UpdatedAt: getTime(row, "updated_at"),
	}
}

// Helper functions for type conversion
func getString(row map[string]interface{}, key string) string {
	if val, ok := row[key]; ok && val != nil {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getInt(row map[string]interface{}, key string) int {
	if val, ok := row[key]; ok && val != nil {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}

// getTime parses the ISO timestamps PostgREST returns. Supabase omits the
// zone suffix on some timestamp columns, so try both layouts.
func getTime(row map[string]interface{}, key string) time.Time {
	raw := getString(row, key)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999", raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
