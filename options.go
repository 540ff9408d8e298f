package harlog

import (
	"io"
	"log/slog"
	"os"

	"github.com/sadopc/harlog/internal/body"
	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/logging"
	"github.com/sadopc/harlog/pkg/version"
)

// DefaultJSONLPath is the line log used when Options.JSONLPath is empty.
const DefaultJSONLPath = "./har-entries.jsonl"

// DefaultCreatorName names the creator of new HAR documents.
const DefaultCreatorName = "harlog"

// Options configures a Recorder. Zero values select the defaults.
type Options struct {
	// JSONLPath receives one JSON line per entry.
	JSONLPath string
	// DisableJSONL turns the line log off entirely.
	DisableJSONL bool
	// HARFilePath, when set, names a HAR document that is rewritten with
	// every entry appended.
	HARFilePath string
	// MaxBodyChars caps stored text bodies. Values <= 0 mean 100000.
	MaxBodyChars int
	// IncludeResponse records the response instead of a placeholder.
	IncludeResponse bool
	CreatorName     string
	CreatorVersion  string
	// HistoryPath, when set, names a SQLite database indexing every entry.
	HistoryPath string

	// Logger receives warnings. Defaults to a text logger on stderr.
	Logger *slog.Logger
	// Console receives entries that could not be written to a file.
	// Defaults to os.Stderr.
	Console io.Writer
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{
		JSONLPath:      DefaultJSONLPath,
		MaxBodyChars:   body.DefaultMaxChars,
		CreatorName:    DefaultCreatorName,
		CreatorVersion: version.Version,
		Logger:         logging.New(logging.DefaultConfig()),
		Console:        os.Stderr,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.JSONLPath == "" {
		o.JSONLPath = def.JSONLPath
	}
	if o.MaxBodyChars <= 0 {
		o.MaxBodyChars = def.MaxBodyChars
	}
	if o.CreatorName == "" {
		o.CreatorName = def.CreatorName
	}
	if o.CreatorVersion == "" {
		o.CreatorVersion = def.CreatorVersion
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	if o.Console == nil {
		o.Console = def.Console
	}
	return o
}

// LoadOptions reads options from a YAML file. Keys are snake_case field
// names (jsonl_path, har_file_path, include_response, ...); log_level and
// log_format configure the Logger.
func LoadOptions(path string) (Options, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return Options{}, err
	}
	return optionsFromConfig(cfg), nil
}

func optionsFromConfig(cfg config.Config) Options {
	return Options{
		JSONLPath:       cfg.JSONLPath,
		DisableJSONL:    cfg.DisableJSONL,
		HARFilePath:     cfg.HARFilePath,
		MaxBodyChars:    cfg.MaxBodyChars,
		IncludeResponse: cfg.IncludeResponse,
		CreatorName:     cfg.CreatorName,
		CreatorVersion:  cfg.CreatorVersion,
		HistoryPath:     cfg.HistoryPath,
		Logger: logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Format: logging.ParseFormat(cfg.LogFormat),
		}),
	}
}
