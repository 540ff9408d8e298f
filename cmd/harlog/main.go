package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/har"
	importutil "github.com/sadopc/harlog/internal/import"
	"github.com/sadopc/harlog/internal/scripting"
	"github.com/sadopc/harlog/internal/ui/theme"
	"github.com/sadopc/harlog/pkg/version"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "list":
		listCmd()
	case "show":
		showCmd()
	case "convert":
		convertCmd()
	case "curl":
		curlCmd()
	case "diff":
		diffCmd()
	case "validate":
		validateCmd()
	case "history":
		historyCmd()
	case "completion":
		completionCmd()
	case "version", "--version":
		fmt.Printf("harlog %s (%s) built %s\n", version.Version, version.Commit, version.Date)
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		printHelp()
		os.Exit(2)
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `harlog - inspect HTTP traffic recorded as HAR entries

Usage:
  harlog <command> [args] [flags]

Commands:
  list      List entries in a JSONL log or HAR document
  show      Print entries as highlighted JSON
  convert   Merge a JSONL log into a HAR document
  curl      Print an entry as a curl command
  diff      Compare two entries
  validate  Check that files are readable JSONL logs or HAR documents
  history   Index, list and search entries in the SQLite history
  completion  Generate shell completion scripts (bash, zsh, fish)
  version   Print version information
  help      Show this help message

Configuration is read from ~/.config/harlog/config.yaml.
Themes: %s
Run 'harlog <command> --help' for more information about a command.
`, strings.Join(theme.Names(), ", "))
}

// parseArgs parses flags that may appear before or after positional
// arguments and returns the positionals.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func fatalf(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(code)
}

func stylesFor(cfg config.Config, noColor bool) theme.Styles {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return theme.PlainStyles()
	}
	return theme.NewStyles(theme.Resolve(cfg.Theme))
}

// indexedItem is a loaded entry with its position in the source file.
type indexedItem struct {
	Index int
	importutil.Item
}

// loadItems reads path and keeps the entries matching filterExpr.
func loadItems(path, filterExpr string, timeout time.Duration) ([]indexedItem, error) {
	_, items, err := importutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var filter *scripting.Filter
	if filterExpr != "" {
		filter, err = scripting.NewEngine(timeout).Compile(filterExpr)
		if err != nil {
			return nil, err
		}
	}

	out := make([]indexedItem, 0, len(items))
	for i, item := range items {
		if filter != nil {
			ok, err := filter.Match(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, indexedItem{Index: i, Item: item})
	}
	return out, nil
}

// pick returns the entry at index, or the last one when index < 0.
func pick(items []indexedItem, index int) (indexedItem, error) {
	if len(items) == 0 {
		return indexedItem{}, fmt.Errorf("no entries")
	}
	if index < 0 {
		return items[len(items)-1], nil
	}
	for _, it := range items {
		if it.Index == index {
			return it, nil
		}
	}
	return indexedItem{}, fmt.Errorf("no entry with index %d", index)
}

// entrySize is the response size when one was recorded, else the request
// body length.
func entrySize(e har.Entry) int64 {
	if !e.Response.IsPlaceholder() {
		return int64(e.Response.Content.Size)
	}
	return int64(len(e.Request.BodyText()))
}

func parseStarted(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
