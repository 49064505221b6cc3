package config

import "testing"

const (
	defaultMaxUploadSize int64 = 4 * 1024 * 1024
	defaultMaxFileSize   int64 = 10 * 1024 * 1024
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_UPLOAD_SIZE", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	t.Setenv("WAITLIST_WEBHOOK_URL", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxUploadSize() != defaultMaxUploadSize {
		t.Fatalf("expected default max upload size %d, got %d", defaultMaxUploadSize, cfg.GetMaxUploadSize())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetWaitlistWebhookURL() != "" {
		t.Fatalf("expected no default webhook url, got %s", cfg.GetWaitlistWebhookURL())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_UPLOAD_SIZE", "2097152")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
	t.Setenv("WAITLIST_WEBHOOK_URL", "https://example.com/hook")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected PORT to win, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxUploadSize() != 2097152 {
		t.Fatalf("expected max upload size 2097152, got %d", cfg.GetMaxUploadSize())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url override, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseAnonKey() != "anon-key" {
		t.Fatalf("expected anon key override, got %s", cfg.GetSupabaseAnonKey())
	}
	if cfg.GetSupabaseServiceRoleKey() != "service-key" {
		t.Fatalf("expected service role key override, got %s", cfg.GetSupabaseServiceRoleKey())
	}
	if cfg.GetWaitlistWebhookURL() != "https://example.com/hook" {
		t.Fatalf("expected webhook url override, got %s", cfg.GetWaitlistWebhookURL())
	}
}

func TestNewConfig_InvalidSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "not-a-number")

	cfg := NewConfig()

	if cfg.GetMaxUploadSize() != defaultMaxUploadSize {
		t.Fatalf("expected fallback to default, got %d", cfg.GetMaxUploadSize())
	}
}
