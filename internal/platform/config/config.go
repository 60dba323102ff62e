package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendBolt     = "bolt"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      slog.Level
	EnableDBCheck bool

	StorageBackend string
	DatabaseURL    string
	SQLitePath     string
	BoltPath       string
	RunMigrations  bool

	ChartFile string

	CORSAllowedOrigins []string
	RateLimit          string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Explicit envFiles must exist.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		// Attempt to load .env file, ignore error if it doesn't exist
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_BACKEND", BackendMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "financial.db")
	v.SetDefault("BOLT_PATH", "financial.bolt")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("CHART_FILE", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("POSTHOG_API_KEY", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		StorageBackend: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		BoltPath:       v.GetString("BOLT_PATH"),
		RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		ChartFile:      v.GetString("CHART_FILE"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		PosthogAPIKey:  v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected storage backend has what it needs.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL must be set when STORAGE_BACKEND is %s", BackendPostgres)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set when STORAGE_BACKEND is %s", BackendSQLite)
		}
	case BackendBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("BOLT_PATH must be set when STORAGE_BACKEND is %s", BackendBolt)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, postgres, sqlite or bolt)", c.StorageBackend)
	}
	return nil
}

// AllowsAllOrigins reports whether CORS is open to every origin.
func (c *Config) AllowsAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}
