package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/sadopc/harlog/internal/config"
	"github.com/sadopc/harlog/internal/export"
)

func curlCmd() {
	fs := flag.NewFlagSet("curl", flag.ExitOnError)
	indexFlag := fs.Int("index", -1, "Entry index (-1 for the last one)")
	copyFlag := fs.Bool("copy", false, "Copy the command to the clipboard")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: harlog curl <file> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Print a recorded request as a curl command.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  harlog curl har-entries.jsonl --index 2\n")
		fmt.Fprintf(os.Stderr, "  harlog curl traffic.har --copy\n")
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
	items, err := loadItems(args[0], "", cfg.ScriptTimeout)
	if err != nil {
		fatalf(1, "%v", err)
	}
	it, err := pick(items, *indexFlag)
	if err != nil {
		fatalf(1, "%v", err)
	}

	cmd := export.AsCurl(it.Entry)
	fmt.Println(cmd)
	if *copyFlag {
		if err := clipboard.WriteAll(cmd); err != nil {
			fatalf(1, "copying to clipboard: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Copied to clipboard")
	}
}
