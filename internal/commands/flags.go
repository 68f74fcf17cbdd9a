package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/closet/internal/core/closet"
	"github.com/colonyops/closet/internal/core/config"
	"github.com/colonyops/closet/internal/core/notify"
	"github.com/colonyops/closet/internal/data/db"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is the item store selected by store.backend.
	Store closet.Store

	// Notifications persists TUI notifications. Nil disables history.
	Notifications notify.Store

	// DB is the open SQLite database, nil when it could not be opened.
	DB *db.DB
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "closet", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "closet")
}
