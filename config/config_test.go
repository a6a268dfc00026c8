package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "postgres://localhost/notes")
	t.Setenv("ADMIN_KEY", " admin ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "admin", cfg.Access.AdminKey)
	assert.Equal(t, 50, cfg.ListLimits.Default)
	assert.Equal(t, 200, cfg.ListLimits.Max)
	assert.Equal(t, 10000, cfg.ExportLimits.Max)
	assert.Equal(t, "Asia/Tokyo", cfg.ExportLocation.String())
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://db/notes")
	t.Setenv("DB_CONNECT_TIMEOUT", "5")
	t.Setenv("FILTER_CACHE_TTL", "90s")
	t.Setenv("LIST_MAX_LIMIT", "100")
	t.Setenv("EXPORT_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 90*time.Second, cfg.FilterCacheTTL)
	assert.Equal(t, 100, cfg.ListLimits.Max)
	assert.Equal(t, time.UTC, cfg.ExportLocation)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadRequiresDatabaseOutsideTests(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadRejectsBadLimitsAndZone(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("LIST_DEFAULT_LIMIT", "500")
	t.Setenv("LIST_MAX_LIMIT", "100")
	_, err := Load()
	assert.ErrorContains(t, err, "LIST_DEFAULT_LIMIT")

	t.Setenv("LIST_DEFAULT_LIMIT", "10")
	t.Setenv("EXPORT_TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.ErrorContains(t, err, "EXPORT_TIMEZONE")
}
