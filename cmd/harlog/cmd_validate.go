package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	importutil "github.com/sadopc/harlog/internal/import"
)

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog validate <file> [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Check that files are readable JSONL logs or HAR documents.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  harlog validate har-entries.jsonl\n")
		fmt.Fprintf(os.Stderr, "  harlog validate *.har\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	hasErrors := false
	for _, path := range fs.Args() {
		summary, err := validateFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			hasErrors = true
		} else {
			fmt.Printf("OK   %s (%s)\n", path, summary)
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}

// validateFile parses path and runs structural checks on every entry.
func validateFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("file is empty")
	}

	format, items, err := importutil.Parse(data)
	if err != nil {
		return "", err
	}

	var warnings []string
	for i, item := range items {
		e := item.Entry
		if e.Request.Method == "" {
			warnings = append(warnings, fmt.Sprintf("entry %d: missing request method", i))
		}
		if e.Request.URL == "" {
			warnings = append(warnings, fmt.Sprintf("entry %d: missing request URL", i))
		}
		if e.StartedDateTime != "" && parseStarted(e.StartedDateTime).IsZero() {
			warnings = append(warnings, fmt.Sprintf("entry %d: bad startedDateTime %q", i, e.StartedDateTime))
		}
	}

	if len(warnings) > 0 {
		return "", fmt.Errorf("validation warnings:\n  - %s", strings.Join(warnings, "\n  - "))
	}

	return fmt.Sprintf("%s, %d entries", format, len(items)), nil
}
