package repository

import (
	"fmt"

	"doc-intake-server/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient implements the domain.SupabaseClient interface. It holds the
// restricted (anon) client and the elevated (service-role) client as two
// separately constructed capabilities.
type SupabaseClient struct {
	restricted *supabase.Client
	elevated   *supabase.Client
	config     domain.Config
	logger     domain.Logger
}

// NewSupabaseClient creates a new Supabase client instance
func NewSupabaseClient(config domain.Config, logger domain.Logger) domain.SupabaseClient {
	return &SupabaseClient{
		config: config,
		logger: logger,
	}
}

// Initialize establishes connections for both credential tiers.
func (s *SupabaseClient) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	anonKey := s.config.GetSupabaseAnonKey()
	serviceRoleKey := s.config.GetSupabaseServiceRoleKey()

	if supabaseURL == "" || anonKey == "" {
		return fmt.Errorf("supabase URL and anon key must be provided")
	}

	restricted, err := supabase.NewClient(supabaseURL, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create restricted Supabase client: %w", err)
	}
	s.restricted = restricted

	if serviceRoleKey == "" {
		return fmt.Errorf("missing SUPABASE_SERVICE_ROLE_KEY")
	}

	// The elevated client bypasses row-level security. Temporary trust
	// boundary until per-request identity exists; repositories compensate by
	// filtering on an explicit user_id.
	elevated, err := supabase.NewClient(supabaseURL, serviceRoleKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create elevated Supabase client: %w", err)
	}
	s.elevated = elevated

	s.logger.Info("Supabase clients initialized", "url", supabaseURL)
	return nil
}

// Restricted returns the anon-key client (RLS enforced).
func (s *SupabaseClient) Restricted() *supabase.Client {
	return s.restricted
}

// Elevated returns the service-role client (bypasses RLS).
func (s *SupabaseClient) Elevated() *supabase.Client {
	return s.elevated
}
