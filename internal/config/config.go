package config

import (
	"time"

	"github.com/sadopc/harlog/pkg/version"
)

// Config holds recorder options plus the settings used by the harlog CLI.
type Config struct {
	JSONLPath       string `yaml:"jsonl_path"`
	DisableJSONL    bool   `yaml:"disable_jsonl"`
	HARFilePath     string `yaml:"har_file_path"`
	MaxBodyChars    int    `yaml:"max_body_chars"`
	IncludeResponse bool   `yaml:"include_response"`
	CreatorName     string `yaml:"creator_name"`
	CreatorVersion  string `yaml:"creator_version"`
	HistoryPath     string `yaml:"history_path"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`

	// CLI only.
	Theme         string        `yaml:"theme"`
	HistoryDB     string        `yaml:"history_db"`
	ScriptTimeout time.Duration `yaml:"script_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		JSONLPath:      "./har-entries.jsonl",
		MaxBodyChars:   100_000,
		CreatorName:    "harlog",
		CreatorVersion: version.Version,
		LogLevel:       "info",
		LogFormat:      "text",
		Theme:          "catppuccin-mocha",
		HistoryDB:      "",
		ScriptTimeout:  5 * time.Second,
	}
}
