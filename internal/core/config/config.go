// Package config handles configuration loading and validation for closet.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/closet/internal/core/styles"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the application configuration.
type Config struct {
	TUI       TUIConfig      `yaml:"tui"`
	Store     StoreConfig    `yaml:"store"`
	Database  DatabaseConfig `yaml:"database"`
	SeedFiles []string       `yaml:"seed_files"` // glob patterns, relative to the config file
	DataDir   string         `yaml:"-"`          // set by caller, not from config file
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme        string        `yaml:"theme"`
	ToastTTL     time.Duration `yaml:"toast_ttl"`
	HistoryLimit int           `yaml:"history_limit"` // notifications kept for the history dialog
}

// StoreConfig selects and tunes the item store.
type StoreConfig struct {
	Backend string        `yaml:"backend"`
	Latency time.Duration `yaml:"latency"` // simulated latency, memory backend only
	Timeout time.Duration `yaml:"timeout"` // per-call deadline, 0 disables
}

// DatabaseConfig tunes the SQLite connection pool.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:        styles.DefaultTheme,
			ToastTTL:     4 * time.Second,
			HistoryLimit: 200,
		},
		Store: StoreConfig{
			Backend: BackendSQLite,
			Timeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}

		cfg.resolveSeedFiles(filepath.Dir(configPath))
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.ToastTTL == 0 {
		c.TUI.ToastTTL = defaults.TUI.ToastTTL
	}
	if c.TUI.HistoryLimit == 0 {
		c.TUI.HistoryLimit = defaults.TUI.HistoryLimit
	}
	if c.Store.Backend == "" {
		c.Store.Backend = defaults.Store.Backend
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

func (c *Config) resolveSeedFiles(configDir string) {
	for i, pattern := range c.SeedFiles {
		if !filepath.IsAbs(pattern) {
			c.SeedFiles[i] = filepath.Join(configDir, pattern)
		}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q, available: %v", c.TUI.Theme, styles.ThemeNames()))
	}
	if c.TUI.ToastTTL < 0 {
		errs = errs.Append("tui.toast_ttl", fmt.Errorf("must not be negative"))
	}
	if c.TUI.HistoryLimit < 1 {
		errs = errs.Append("tui.history_limit", fmt.Errorf("must be at least 1"))
	}
	if c.Store.Backend != BackendSQLite && c.Store.Backend != BackendMemory {
		errs = errs.Append("store.backend", fmt.Errorf("must be %q or %q, got %q", BackendSQLite, BackendMemory, c.Store.Backend))
	}
	if c.Store.Latency < 0 {
		errs = errs.Append("store.latency", fmt.Errorf("must not be negative"))
	}
	if c.Store.Timeout < 0 {
		errs = errs.Append("store.timeout", fmt.Errorf("must not be negative"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = errs.Append("database.max_open_conns", fmt.Errorf("must be at least 1"))
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = errs.Append("database.max_idle_conns", fmt.Errorf("must be between 0 and max_open_conns"))
	}
	if c.Database.BusyTimeout < 0 {
		errs = errs.Append("database.busy_timeout", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}
