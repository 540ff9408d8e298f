package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/core/history"
	importutil "github.com/sadopc/harlog/internal/import"
	"github.com/sadopc/harlog/internal/ui/theme"
)

func historyCmd() {
	if len(os.Args) < 3 {
		printHistoryHelp()
		os.Exit(2)
	}

	switch os.Args[2] {
	case "index":
		historyIndexCmd()
	case "list":
		historyListCmd()
	case "search":
		historySearchCmd()
	case "clear":
		historyClearCmd()
	case "help", "--help", "-h":
		printHistoryHelp()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown history command %q\n\n", os.Args[2])
		printHistoryHelp()
		os.Exit(2)
	}
}

func printHistoryHelp() {
	fmt.Fprintf(os.Stderr, `Usage: harlog history <command> [args] [flags]

Commands:
  index <file>     Add every entry of a JSONL log or HAR document
  list             List recent entries
  search <query>   Search entries by URL or method
  clear            Delete every entry

Every command accepts --db <path> (default ~/.config/harlog/history.db).
`)
}

func openHistory(fs *flag.FlagSet, args []string) (*history.Store, []string, theme.Styles) {
	cfg := config.Load()
	dbFlag := fs.String("db", cfg.HistoryDBPath(), "History database path")
	noColorFlag := fs.Bool("no-color", false, "Disable colored output")

	rest, err := parseArgs(fs, args)
	if err != nil {
		os.Exit(2)
	}

	store, err := history.NewStore(*dbFlag)
	if err != nil {
		fatalf(1, "opening history: %v", err)
	}
	return store, rest, stylesFor(cfg, *noColorFlag)
}

func historyIndexCmd() {
	fs := flag.NewFlagSet("history index", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog history index <file> [files...] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	store, args, _ := openHistory(fs, os.Args[3:])
	defer store.Close()

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	for _, path := range args {
		n, err := indexFile(store, path)
		if err != nil {
			fatalf(1, "%s: %v", path, err)
		}
		fmt.Fprintf(os.Stderr, "Indexed %d entries from %s\n", n, path)
	}
}

// indexFile adds every entry in path to store.
func indexFile(store *history.Store, path string) (int, error) {
	_, items, err := importutil.ReadFile(path)
	if err != nil {
		return 0, err
	}
	for i, item := range items {
		if _, err := store.Add(history.FromHAR(item.Entry, item.Raw)); err != nil {
			return i, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return len(items), nil
}

func historyListCmd() {
	fs := flag.NewFlagSet("history list", flag.ExitOnError)
	limitFlag := fs.Int("limit", 50, "Maximum number of entries")
	methodFlag := fs.String("method", "", "Only entries with this method")
	statusFlag := fs.Int("status", 0, "Only entries with this status code")
	urlFlag := fs.String("url", "", "Only entries whose URL contains this text")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog history list [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	store, _, styles := openHistory(fs, os.Args[3:])
	defer store.Close()

	entries, err := store.ListFiltered(history.Filter{
		Method:     strings.ToUpper(*methodFlag),
		StatusCode: *statusFlag,
		URLPattern: *urlFlag,
		Limit:      *limitFlag,
	})
	if err != nil {
		fatalf(1, "listing history: %v", err)
	}
	printHistory(os.Stdout, entries, styles)
}

func historySearchCmd() {
	fs := flag.NewFlagSet("history search", flag.ExitOnError)
	fuzzyFlag := fs.Bool("fuzzy", false, "Rank by fuzzy match instead of substring")
	limitFlag := fs.Int("limit", 20, "Maximum number of fuzzy results")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog history search <query> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	store, args, styles := openHistory(fs, os.Args[3:])
	defer store.Close()

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: search query is required\n\n")
		fs.Usage()
		os.Exit(2)
	}
	query := strings.Join(args, " ")

	var entries []history.Entry
	var err error
	if *fuzzyFlag {
		entries, err = store.FuzzyFind(query, *limitFlag)
	} else {
		entries, err = store.Search(query)
	}
	if err != nil {
		fatalf(1, "searching history: %v", err)
	}
	printHistory(os.Stdout, entries, styles)
}

func historyClearCmd() {
	fs := flag.NewFlagSet("history clear", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog history clear [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	store, _, _ := openHistory(fs, os.Args[3:])
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		fatalf(1, "counting history: %v", err)
	}
	if err := store.Clear(); err != nil {
		fatalf(1, "clearing history: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Deleted %s entries\n", theme.Count(n))
}

func printHistory(w io.Writer, entries []history.Entry, s theme.Styles) {
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		size := e.ResponseSize
		if e.Status == 0 {
			size = e.RequestSize
		}
		rows = append(rows, row{
			ID:      id,
			Started: e.Started,
			Method:  e.Method,
			Status:  e.Status,
			Size:    size,
			URL:     e.URL,
		})
	}
	renderRows(w, rows, s)
}
