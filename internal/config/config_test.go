package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigins(t *testing.T) {
	origins := ParseOrigins(" http://localhost:5173/ , ,https://console.example.com,")

	assert.Equal(t, []string{"http://localhost:5173", "https://console.example.com"}, origins)
}

func TestValidateDatabaseURL(t *testing.T) {
	assert.NoError(t, ValidateDatabaseURL("postgres://u:p@localhost:5432/app"))
	assert.NoError(t, ValidateDatabaseURL("postgresql://u:p@localhost:5432/app"))
	assert.Error(t, ValidateDatabaseURL("mysql://u:p@localhost:3306/app"))
	assert.Error(t, ValidateDatabaseURL("localhost:5432"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/app")
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_ORIGINS", "")
	t.Setenv("FRONTEND_ORIGIN", "")
	t.Setenv("QUERY_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/app", cfg.DatabaseURL)
	assert.Len(t, cfg.AllowedOrigins, 3)
	assert.Equal(t, defaultQueryTimeout, cfg.QueryTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/meta")
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_ORIGINS", "https://a.example.com/,https://b.example.com")
	t.Setenv("QUERY_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
}

func TestLoadRejectsBadInput(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "mysql://u:p@db:3306/meta")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/meta")
	t.Setenv("QUERY_TIMEOUT_SECONDS", "zero")
	_, err = Load()
	assert.Error(t, err)
}
