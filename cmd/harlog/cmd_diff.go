package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/diff"
	"github.com/sadopc/harlog/internal/ui/theme"
)

func diffCmd() {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	contextFlag := fs.Int("context", 3, "Unchanged lines shown around each change")
	noColorFlag := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog diff <file> <index> <index> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compare two entries of the same file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  harlog diff har-entries.jsonl 3 4\n")
		fmt.Fprintf(os.Stderr, "  harlog diff traffic.har 0 -1 --context 0\n")
	}

	args, err := parseArgs(fs, os.Args[2:])
	if err != nil {
		os.Exit(2)
	}
	if len(args) < 3 {
		fmt.Fprintf(os.Stderr, "Error: file path and two entry indexes are required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	var idx [2]int
	for i, s := range args[1:3] {
		if idx[i], err = strconv.Atoi(s); err != nil {
			fatalf(2, "invalid index %q", s)
		}
	}

	cfg := config.Load()
	items, err := loadItems(args[0], "", cfg.ScriptTimeout)
	if err != nil {
		fatalf(1, "%v", err)
	}
	a, err := pick(items, idx[0])
	if err != nil {
		fatalf(1, "%v", err)
	}
	b, err := pick(items, idx[1])
	if err != nil {
		fatalf(1, "%v", err)
	}

	if !printDiff(os.Stdout, a, b, *contextFlag, stylesFor(cfg, *noColorFlag)) {
		fmt.Fprintln(os.Stderr, "Entries are identical")
	}
}

// printDiff writes the changed hunks between a and b and reports whether
// there were any.
func printDiff(w io.Writer, a, b indexedItem, context int, s theme.Styles) bool {
	lines := diff.Entries(a.Raw, b.Raw)
	if !diff.Changed(lines) {
		return false
	}

	fmt.Fprintln(w, s.Error.Render(fmt.Sprintf("--- entry %d", a.Index)))
	fmt.Fprintln(w, s.Success.Render(fmt.Sprintf("+++ entry %d", b.Index)))
	for _, l := range diff.Hunks(lines, context) {
		switch l.Op {
		case diff.Added:
			fmt.Fprintln(w, s.Success.Render("+"+l.Text))
		case diff.Removed:
			fmt.Fprintln(w, s.Error.Render("-"+l.Text))
		default:
			if l.OldLine == 0 {
				fmt.Fprintln(w, s.Muted.Render(l.Text))
			} else {
				fmt.Fprintln(w, " "+l.Text)
			}
		}
	}
	return true
}
