// ABOUTME: Configuration management with storage backend selection
// ABOUTME: Handles data directory, catalog source, deployment mode, and backend factory

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/gamedex/internal/storage"
)

// Config stores gamedex configuration.
type Config struct {
	// Backend selects the storage backend: "file" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for user state and the local catalog.
	// Supports ~ expansion. Defaults to ~/.local/share/gamedex.
	DataDir string `json:"data_dir,omitempty"`

	// CatalogSource is the catalog resource: an http(s) URL or a local
	// file path. Defaults to games_data.json inside DataDir.
	CatalogSource string `json:"catalog_source,omitempty"`

	// Mode is the deployment mode for navigation URLs: "local" (default)
	// or "deployed".
	Mode string `json:"mode,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "file"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetCatalogSource returns the catalog source, defaulting to the local
// games_data.json in the data directory.
func (c *Config) GetCatalogSource() string {
	if c.CatalogSource == "" {
		return filepath.Join(c.GetDataDir(), "games_data.json")
	}
	if strings.HasPrefix(c.CatalogSource, "http://") || strings.HasPrefix(c.CatalogSource, "https://") {
		return c.CatalogSource
	}
	return ExpandPath(c.CatalogSource)
}

// GetMode returns the configured deployment mode string, defaulting to
// "local".
func (c *Config) GetMode() string {
	if c.Mode == "" {
		return "local"
	}
	return c.Mode
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a storage.Store based on the configured backend.
func (c *Config) OpenStorage() (storage.Store, error) {
	switch c.GetBackend() {
	case "file":
		return storage.NewFileStore(filepath.Join(c.GetDataDir(), "state"))
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(c.GetDataDir(), "gamedex.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gamedex", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// defaultDataDir returns the standard XDG data directory for gamedex.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gamedex")
}
