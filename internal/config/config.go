// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret is the HS256 key used to verify bearer tokens. Required.
	JWTSecret string

	// RedisURL enables the geocoding cache when set, e.g. redis://localhost:6379/0.
	RedisURL string

	GeocodingURL string
	ClimateURL   string
	EventsURL    string

	// EventsAPIKey is the Discovery API credential. It never leaves the server.
	EventsAPIKey string

	// EventsLimit caps events per search. Defaults to 10.
	EventsLimit int

	// EnrichTimeout bounds each upstream enrichment request. Defaults to 10s.
	EnrichTimeout time.Duration

	// MaxBodyBytes limits request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// describing the first malformed numeric or duration value.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RedisURL:     os.Getenv("REDIS_URL"),
		GeocodingURL: getEnv("GEOCODING_URL", "https://geocoding-api.open-meteo.com"),
		ClimateURL:   getEnv("CLIMATE_URL", "https://climate-api.open-meteo.com"),
		EventsURL:    getEnv("EVENTS_URL", "https://app.ticketmaster.com"),
		EventsAPIKey: os.Getenv("EVENTS_API_KEY"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	limit, err := strconv.Atoi(getEnv("EVENTS_LIMIT", "10"))
	if err != nil || limit <= 0 {
		return Config{}, fmt.Errorf("EVENTS_LIMIT must be a positive integer")
	}
	cfg.EventsLimit = limit

	timeout, err := time.ParseDuration(getEnv("ENRICH_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("ENRICH_TIMEOUT must be a positive duration such as 10s")
	}
	cfg.EnrichTimeout = timeout

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

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
