// Package importutil reads files written by harlog back into entries.
package importutil

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/sadopc/harlog/internal/har"
)

// Formats reported by DetectFormat.
const (
	FormatHAR     = "har"
	FormatJSONL   = "jsonl"
	FormatUnknown = "unknown"
)

// DetectFormat inspects the data and returns the detected format.
func DetectFormat(data []byte) string {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return FormatUnknown
	}

	// HAR: has "log" with an "entries" array inside
	if strings.HasPrefix(s, "{") && har.IsDocument([]byte(s)) {
		return FormatHAR
	}

	// JSONL: the first non-blank line is a single entry
	if line := firstLine(data); line != nil && har.IsEntry(line) {
		return FormatJSONL
	}

	return FormatUnknown
}

func firstLine(data []byte) []byte {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if line := bytes.TrimSpace(sc.Bytes()); len(line) > 0 {
			return line
		}
	}
	return nil
}
