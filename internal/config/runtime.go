// Package config provides centralized configuration for commandkit runtime values.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/manav03panchal/commandkit/internal/logging"
	"github.com/manav03panchal/commandkit/internal/storage"
	"github.com/manav03panchal/commandkit/internal/validate"
)

// MemoryDatabase is the COMMANDKIT_DATABASE value that selects an in-memory store.
const MemoryDatabase = ":memory:"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// Scene defaults for steps that don't name an object or distance
	Scene SceneConfig

	// Logging configuration
	Log LogConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Database is a directory path, or ":memory:".
	// Default: $XDG_DATA_HOME/commandkit/db
	Database string `env:"COMMANDKIT_DATABASE"`
}

// SceneConfig holds defaults applied to steps.
type SceneConfig struct {
	// DefaultDistance is how far a move step goes when none is given.
	// Default: 1
	DefaultDistance float64 `env:"COMMANDKIT_DEFAULT_DISTANCE" envDefault:"1"`

	// DefaultObject is the object steps act on when none is named.
	// Default: crate
	DefaultObject string `env:"COMMANDKIT_DEFAULT_OBJECT" envDefault:"crate"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `env:"COMMANDKIT_LOG_LEVEL" envDefault:"warn"`

	// JSON switches the log handler to JSON lines.
	JSON bool `env:"COMMANDKIT_LOG_JSON"`
}

// Default returns the default runtime configuration.
func Default() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			Database: storage.DefaultPath(),
		},
		Scene: SceneConfig{
			DefaultDistance: 1,
			DefaultObject:   "crate",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load returns the defaults overridden by COMMANDKIT_* environment variables.
func Load() (*RuntimeConfig, error) {
	cfg := Default()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = storage.DefaultPath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *RuntimeConfig) Validate() error {
	if err := validate.Distance(c.Scene.DefaultDistance); err != nil {
		return fmt.Errorf("COMMANDKIT_DEFAULT_DISTANCE: %w", err)
	}
	if err := validate.ObjectName(c.Scene.DefaultObject); err != nil {
		return fmt.Errorf("COMMANDKIT_DEFAULT_OBJECT: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("COMMANDKIT_LOG_LEVEL: unknown level %q", c.Log.Level)
	}
	return nil
}

// InMemory reports whether the database should live in memory only.
func (c *RuntimeConfig) InMemory() bool {
	return strings.EqualFold(c.Storage.Database, MemoryDatabase)
}

// StorageOptions converts the storage section into storage.Options.
func (c *RuntimeConfig) StorageOptions() storage.Options {
	if c.InMemory() {
		return storage.Options{InMemory: true}
	}
	return storage.Options{Path: c.Storage.Database}
}

// LogLevel returns the parsed log level, falling back to warn.
func (c *RuntimeConfig) LogLevel() slog.Level {
	return logging.ParseLevel(c.Log.Level)
}
