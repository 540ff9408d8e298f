package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/ui/theme"
)

func showCmd() {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	indexFlag := fs.Int("index", -2, "Show only the entry with this index (-1 for the last one)")
	filterFlag := fs.String("filter", "", "JavaScript expression selecting entries")
	noColorFlag := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog show <file> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Print entries as pretty, highlighted JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  harlog show har-entries.jsonl --index 3\n")
		fmt.Fprintf(os.Stderr, "  harlog show traffic.har --filter 'entry.response.status >= 500'\n")
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
	if *indexFlag != -2 {
		it, err := pick(items, *indexFlag)
		if err != nil {
			fatalf(1, "%v", err)
		}
		items = []indexedItem{it}
	}
	showItems(os.Stdout, items, stylesFor(cfg, *noColorFlag))
}

func showItems(w io.Writer, items []indexedItem, s theme.Styles) {
	for i, it := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("# entry %d", it.Index)))
		fmt.Fprintln(w, theme.Body(string(it.Raw), "application/json", s.Syntax()))
	}
}
