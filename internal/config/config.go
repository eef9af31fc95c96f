// Package config loads application configuration from environment variables.
// A local .env file is folded into the environment first via godotenv's
// autoload import, matching how the service is run in development.
package config

import (
	"os"
	"strings"

	// Side-effect import: loads a .env file (if present) into the process
	// environment before Load reads it.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
//
// The backend credentials are optional by contract: a deployment with
// missing credentials still starts and serves traffic, with no-op stub
// collaborators substituted for the real store and auth clients. Load never
// fails; main inspects StoreConfigured/AuthConfigured and logs the
// substitution loudly.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "5000".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// DatabaseURL is the managed store's Postgres connection string.
	// Empty means the table store is not configured.
	DatabaseURL string

	// SupabaseURL is the hosted backend's project URL, used for the auth API.
	SupabaseURL string

	// SupabaseKey is the hosted backend's project API key.
	SupabaseKey string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]: the API serves a browser frontend from anywhere.
	// Set CORS_ORIGINS to a comma-separated list to restrict it.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Missing credentials are not an error — see Config.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "5000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}
}

// StoreConfigured reports whether the table store credential is present.
func (c Config) StoreConfigured() bool {
	return c.DatabaseURL != ""
}

// AuthConfigured reports whether both auth provider credentials are present.
func (c Config) AuthConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
