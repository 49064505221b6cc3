package repository

import (
	"context"
	"fmt"

	"doc-intake-server/internal/domain"
)

// SupabaseDiagnosticsRepository probes the backing tables with minimal
// single-row selects. Used by the diagnostics endpoint only.
type SupabaseDiagnosticsRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseDiagnosticsRepository creates a new diagnostics repository
func NewSupabaseDiagnosticsRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.DiagnosticsRepository {
	return &SupabaseDiagnosticsRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// CheckTables verifies connectivity to the documents and questionnaires
// tables. The first failing probe aborts the check.
func (r *SupabaseDiagnosticsRepository) CheckTables(ctx context.Context) (map[string]string, error) {
	client := r.supabaseClient.Elevated()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	tables := map[string]string{}
	for _, table := range []string{"documents", "questionnaires"} {
		_, _, err := client.From(table).
			Select("id", "", false).
			Limit(1, "").
			ExecuteWithContext(ctx)
		if err != nil {
			r.logger.Error("Table probe failed", err, "table", table)
			return nil, fmt.Errorf("failed to reach table %s: %w", table, err)
		}
		tables[table] = "connected"
	}

	return tables, nil
}
