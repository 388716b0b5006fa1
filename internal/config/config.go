package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort         = 8080
	defaultOrigins      = "http://localhost:5173,http://127.0.0.1:5173,http://0.0.0.0:5173"
	defaultQueryTimeout = 30 * time.Second
)

// Config holds all process configuration. It is built once in NewServer and
// passed to the components that need it.
type Config struct {
	Port           int
	DatabaseURL    string
	AllowedOrigins []string
	QueryTimeout   time.Duration
}

func Load() (*Config, error) {
	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		port = p
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if err := ValidateDatabaseURL(dsn); err != nil {
		return nil, err
	}

	rawOrigins := os.Getenv("FRONTEND_ORIGINS")
	if rawOrigins == "" {
		rawOrigins = os.Getenv("FRONTEND_ORIGIN")
	}
	if rawOrigins == "" {
		rawOrigins = defaultOrigins
	}

	timeout := defaultQueryTimeout
	if raw := os.Getenv("QUERY_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid QUERY_TIMEOUT_SECONDS %q", raw)
		}
		timeout = time.Duration(secs) * time.Second
	}

	return &Config{
		Port:           port,
		DatabaseURL:    dsn,
		AllowedOrigins: ParseOrigins(rawOrigins),
		QueryTimeout:   timeout,
	}, nil
}

// ValidateDatabaseURL rejects metadata DSNs that do not point at Postgres.
// User-supplied connection strings are not validated here; they go through
// the prober instead.
func ValidateDatabaseURL(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return fmt.Errorf("DATABASE_URL must point to a Postgres database")
	}
	return nil
}

// ParseOrigins splits a comma-separated origin list, trimming whitespace and
// trailing slashes and dropping empty entries.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, candidate := range strings.Split(raw, ",") {
		origin := strings.TrimSpace(candidate)
		if origin == "" {
			continue
		}
		origins = append(origins, strings.TrimRight(origin, "/"))
	}
	return origins
}
