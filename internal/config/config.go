// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage drivers accepted in CALCULATOR_STORAGE.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds every setting the calculator service reads at startup.
type Config struct {
	HTTPAddr        string        `env:"CALCULATOR_HTTP_ADDR" envDefault:":8080"`
	Storage         string        `env:"CALCULATOR_STORAGE" envDefault:"sqlite"`
	SQLitePath      string        `env:"CALCULATOR_SQLITE_PATH" envDefault:"calculator.db"`
	LogLevel        string        `env:"CALCULATOR_LOG_LEVEL" envDefault:"info"`
	ServiceName     string        `env:"OTEL_SERVICE_NAME" envDefault:"calculator"`
	OTelEnabled     bool          `env:"CALCULATOR_OTEL_ENABLED" envDefault:"false"`
	OTelLogs        bool          `env:"CALCULATOR_OTEL_LOGS" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"CALCULATOR_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("CALCULATOR_SQLITE_PATH is required for sqlite storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
