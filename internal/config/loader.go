package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns ~/.config/harlog.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "harlog"), nil
}

// Load loads configuration from ~/.config/harlog/config.yaml. Any problem
// reading or parsing the file leaves the defaults in place.
func Load() Config {
	cfg := DefaultConfig()

	dir, err := Dir()
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return cfg
	}

	parsed := cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg
	}
	return parsed
}

// LoadFile reads a config file over the defaults. Unlike Load it reports
// missing files and syntax errors.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// HistoryDBPath returns the configured history database, defaulting to
// ~/.config/harlog/history.db.
func (c Config) HistoryDBPath() string {
	if c.HistoryDB != "" {
		return c.HistoryDB
	}
	dir, err := Dir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(dir, "history.db")
}
