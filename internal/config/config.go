package config

import (
	"os"
	"strconv"

	"doc-intake-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string
	MaxUploadSize          int64
	MaxFileSize            int64
	LogLevel               string
	SupabaseURL            string
	SupabaseAnonKey        string
	SupabaseServiceRoleKey string
	WaitlistWebhookURL     string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:             getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxUploadSize:          getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 4*1024*1024),  // route-level cap
		MaxFileSize:            getEnvInt64OrDefault("MAX_FILE_SIZE", 10*1024*1024),   // validator cap
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:            getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseAnonKey:        getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		SupabaseServiceRoleKey: getEnvOrDefault("SUPABASE_SERVICE_ROLE_KEY", ""),
		WaitlistWebhookURL:     getEnvOrDefault("WAITLIST_WEBHOOK_URL", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxUploadSize returns the per-request upload cap enforced by the route
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// GetMaxFileSize returns the maximum file size accepted by the validator
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase project URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseAnonKey returns the restricted (anon) Supabase key
func (c *AppConfig) GetSupabaseAnonKey() string {
	return c.SupabaseAnonKey
}

// GetSupabaseServiceRoleKey returns the elevated (service-role) Supabase key
func (c *AppConfig) GetSupabaseServiceRoleKey() string {
	return c.SupabaseServiceRoleKey
}

// GetWaitlistWebhookURL returns the outbound webhook for waitlist signups.
// Empty means signups are logged instead of relayed.
func (c *AppConfig) GetWaitlistWebhookURL() string {
	return c.WaitlistWebhookURL
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
