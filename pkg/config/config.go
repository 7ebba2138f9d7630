package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// Application
	LogLevel    string `conf:"default:warn,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Sorting: pre-supplied direction ("A" or "D"). Empty means ask on stdin.
	SortOrder string `conf:"env:SORT_ORDER"`

	// Observability
	ServiceName     string `conf:"default:namesort,env:SERVICE_NAME"`
	ServiceVersion  string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint    string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN       string `conf:"env:SENTRY_DSN,noprint"`
	MetricsTextfile string `conf:"env:METRICS_TEXTFILE"`
}

// Load reads configuration from environment variables with sensible defaults.
// Command-line flags are owned by the CLI, so conf's --help and --version
// handling is ignored here.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		if !errors.Is(err, conf.ErrHelpWanted) && !errors.Is(err, conf.ErrVersionWanted) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak personal names)")
	}

	if cfg.SortOrder != "" {
		switch strings.ToUpper(strings.TrimSpace(cfg.SortOrder)) {
		case "A", "D":
		default:
			errs = append(errs, fmt.Sprintf("SORT_ORDER must be 'A' or 'D' in production (got %q)", cfg.SortOrder))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
