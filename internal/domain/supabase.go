package domain

import "github.com/supabase-community/supabase-go"

// SupabaseClient exposes the two credential tiers against the hosted backend.
//
// Restricted is the anon-key client: per-row access policies apply. Elevated
// is the service-role client: it bypasses row-level security and exists only
// because the identity layer is not implemented yet. It must be handed solely
// to repositories, never to user-facing read paths.
type SupabaseClient interface {
	Initialize() error
	Restricted() *supabase.Client
	Elevated() *supabase.Client
}
