package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"notesvc/query"
)

type DatabaseConfig struct {
	URL            string
	MaxConns       int32
	ConnectTimeout time.Duration
}

// AccessConfig holds the bearer secrets per tier. Legacy is the single
// API_KEY of older deployments and is accepted as admin.
type AccessConfig struct {
	ReadKey   string
	ExportKey string
	AdminKey  string
	LegacyKey string
}

func (a AccessConfig) Empty() bool {
	return a.ReadKey == "" && a.ExportKey == "" && a.AdminKey == "" && a.LegacyKey == ""
}

type Config struct {
	Env      string
	Port     string
	LogLevel string

	Database DatabaseConfig
	Access   AccessConfig

	RedisURL       string
	FilterCacheTTL time.Duration

	ListLimits     query.Limits
	ExportLimits   query.Limits
	ExportLocation *time.Location

	CORSOrigins  []string
	MaxBodyBytes int64
}

func (c *Config) IsTest() bool {
	return c.Env == "test"
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Env:      getEnvAsString("GO_ENV", "development"),
		Port:     getEnvAsString("PORT", "3000"),
		LogLevel: getEnvAsString("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			URL:            getEnvAsString("DATABASE_URL", ""),
			MaxConns:       getEnvAsInt32("DB_MAX_CONNS", 10),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", 30*time.Second),
		},
		Access: AccessConfig{
			ReadKey:   getEnvAsString("READ_KEY", ""),
			ExportKey: getEnvAsString("EXPORT_KEY", ""),
			AdminKey:  getEnvAsString("ADMIN_KEY", ""),
			LegacyKey: getEnvAsString("API_KEY", ""),
		},
		RedisURL:       getEnvAsString("REDIS_URL", ""),
		FilterCacheTTL: getEnvAsDuration("FILTER_CACHE_TTL", 5*time.Minute),
		ListLimits: query.Limits{
			Default: getEnvAsInt("LIST_DEFAULT_LIMIT", query.ListLimits.Default),
			Max:     getEnvAsInt("LIST_MAX_LIMIT", query.ListLimits.Max),
		},
		ExportLimits: query.Limits{
			Default: getEnvAsInt("EXPORT_DEFAULT_LIMIT", query.ExportLimits.Default),
			Max:     getEnvAsInt("EXPORT_MAX_LIMIT", query.ExportLimits.Max),
		},
		CORSOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS"),
		MaxBodyBytes: getEnvAsInt64("MAX_BODY_BYTES", 1<<20),
	}

	loc, err := time.LoadLocation(getEnvAsString("EXPORT_TIMEZONE", "Asia/Tokyo"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_TIMEZONE: %w", err)
	}
	cfg.ExportLocation = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings. DATABASE_URL may be empty only in
// test mode.
func (c *Config) Validate() error {
	if c.Database.URL == "" && !c.IsTest() {
		return errors.New("required environment variable DATABASE_URL is not set")
	}
	if c.Database.MaxConns < 1 {
		return errors.New("DB_MAX_CONNS must be positive")
	}
	for name, l := range map[string]query.Limits{"LIST": c.ListLimits, "EXPORT": c.ExportLimits} {
		if l.Max < 1 || l.Default < 1 || l.Default > l.Max {
			return fmt.Errorf("%s_DEFAULT_LIMIT must be between 1 and %s_MAX_LIMIT", name, name)
		}
	}
	if c.MaxBodyBytes < 1 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}
