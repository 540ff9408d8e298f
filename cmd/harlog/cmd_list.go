package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/ui/theme"
)

func listCmd() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	filterFlag := fs.String("filter", "", "JavaScript expression selecting entries (e.g. 'entry.response.status >= 400')")
	noColorFlag := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog list <file> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "List entries in a JSONL log or HAR document.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  harlog list har-entries.jsonl\n")
		fmt.Fprintf(os.Stderr, "  harlog list traffic.har --filter 'entry.request.method === \"POST\"'\n")
	}

	args, err := parseArgs(fs, os.Args[2:])
	if err != nil {
		os.Exit(2)
	}
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: file path is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	items, err := loadItems(args[0], *filterFlag, cfg.ScriptTimeout)
	if err != nil {
		fatalf(1, "%v", err)
	}
	listItems(os.Stdout, items, stylesFor(cfg, *noColorFlag))
}

func listItems(w io.Writer, items []indexedItem, s theme.Styles) {
	rows := make([]row, 0, len(items))
	for _, it := range items {
		e := it.Entry
		rows = append(rows, row{
			ID:      strconv.Itoa(it.Index),
			Started: parseStarted(e.StartedDateTime),
			Method:  e.Request.Method,
			Status:  e.Response.Status,
			Size:    entrySize(e),
			URL:     e.Request.URL,
		})
	}
	renderRows(w, rows, s)
	fmt.Fprintln(w, s.Muted.Render(theme.Count(len(items))+" entries"))
}
