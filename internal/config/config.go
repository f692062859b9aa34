// Package config loads runtime settings from the environment and the
// optional TOML file.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"

	"dailytrack/internal/domain"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config is the process configuration.
type Config struct {
	Addr   string `env:"ADDR" envDefault:":8080"`
	WebDir string `env:"WEB_DIR" envDefault:"web"`

	// Storage
	Storage     string `env:"STORAGE" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH"`

	// Optional TOML file with unit defaults
	ConfigPath string `env:"CONFIG_PATH"`

	// Auth
	DisableAuth      bool          `env:"DISABLE_AUTH"`
	TrustRemoteUser  bool          `env:"TRUST_REMOTE_USER"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionPruneSpec string        `env:"SESSION_PRUNE_SCHEDULE" envDefault:"@hourly"`
	InitialUser      string        `env:"INITIAL_USER"`
	InitialPassword  string        `env:"INITIAL_PASSWORD"`

	// OIDC single sign-on, enabled when issuer and client id are set
	OIDCIssuer       string `env:"OIDC_ISSUER"`
	OIDCClientID     string `env:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `env:"OIDC_REDIRECT_URL"`

	// Filled from the TOML file by Load.
	Units domain.UnitOptions
}

// Load parses the environment, fills path defaults and applies the TOML file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(XDGDataHome(), "dailytrack", "dailytrack.db")
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = filepath.Join(XDGConfigHome(), "dailytrack", "config.toml")
	}

	switch cfg.Storage {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for %s storage", cfg.Storage)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	file, err := LoadFile(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Units = file.UnitOptions()
	return cfg, nil
}

// OIDCEnabled reports whether single sign-on is configured.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}
