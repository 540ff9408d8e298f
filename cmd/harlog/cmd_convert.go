package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/har"
	importutil "github.com/sadopc/harlog/internal/import"
	"github.com/sadopc/harlog/internal/sink"
)

func convertCmd() {
	cfg := config.Load()

	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	outputFlag := fs.String("output", "", "HAR document to create or extend (required)")
	nameFlag := fs.String("creator-name", cfg.CreatorName, "Creator name for a new document")
	versionFlag := fs.String("creator-version", cfg.CreatorVersion, "Creator version for a new document")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog convert <file.jsonl> --output <file.har> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Append every entry of a JSONL log (or another HAR document) to a HAR document.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  harlog convert har-entries.jsonl --output traffic.har\n")
	}

	args, err := parseArgs(fs, os.Args[2:])
	if err != nil {
		os.Exit(2)
	}
	if len(args) < 1 || *outputFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: input file and --output are required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	creator := har.Creator{Name: *nameFlag, Version: *versionFlag}
	n, err := convertFile(args[0], *outputFlag, creator)
	if err != nil {
		fatalf(1, "%v", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", n, *outputFlag)
}

// convertFile appends every entry of in to the document at out and returns
// how many were added.
func convertFile(in, out string, creator har.Creator) (int, error) {
	_, items, err := importutil.ReadFile(in)
	if err != nil {
		return 0, err
	}

	doc, discarded := sink.LoadDocument(out, creator)
	if discarded != nil {
		fmt.Fprintf(os.Stderr, "WARN %s: %v (starting a new document)\n", out, discarded)
	}
	for _, item := range items {
		doc.AppendRaw(item.Raw)
	}
	if err := sink.WriteDocument(out, doc); err != nil {
		return 0, err
	}
	return len(items), nil
}
