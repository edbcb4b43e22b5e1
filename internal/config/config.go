// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is loaded first
// when present, so local development needs no exported variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends selectable via the STORAGE variable.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// Storage selects the trip store: "postgres" (default) or "memory".
	// The in-memory store loses all data on restart; it exists for local
	// development and demos without a database.
	Storage string

	// DatabaseURL is the Postgres connection string.
	// Required when Storage is "postgres".
	DatabaseURL string

	// OpenAIAPIKey authenticates against the completion API. Required.
	OpenAIAPIKey string

	// OpenAIBaseURL overrides the completion endpoint (e.g. for a proxy or an
	// OpenAI-compatible server). Empty means the SDK default.
	OpenAIBaseURL string

	// AIModel is the chat model used for travel searches. Defaults to "gpt-4o".
	AIModel string

	// AIMaxAttempts is the total attempt budget for one search, including the
	// first try. Defaults to 3.
	AIMaxAttempts int

	// SearchCacheTTL is how long a search session stays retrievable.
	// Defaults to 30m.
	SearchCacheTTL time.Duration

	// MaxBodyBytes limits incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from the environment (and a .env file when one
// exists) and returns a Config. Returns an error listing any required
// variables that are not set.
func Load() (Config, error) {
	// Absence of a .env file is the normal production case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Storage:       getEnv("STORAGE", StoragePostgres),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		AIModel:       getEnv("AI_MODEL", "gpt-4o"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return Config{}, fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, cfg.Storage)
	}

	var err error
	if cfg.AIMaxAttempts, err = getEnvInt("AI_MAX_ATTEMPTS", 3); err != nil {
		return Config{}, err
	}
	if cfg.AIMaxAttempts < 1 {
		return Config{}, fmt.Errorf("AI_MAX_ATTEMPTS must be at least 1, got %d", cfg.AIMaxAttempts)
	}
	if cfg.SearchCacheTTL, err = getEnvDuration("SEARCH_CACHE_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	maxBody, err := getEnvInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxBodyBytes = int64(maxBody)

	var missing []string

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.Storage == StoragePostgres && cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like \"30m\", got %q", key, v)
	}
	return d, nil
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
