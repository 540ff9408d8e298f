package importutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sadopc/harlog/internal/har"
)

// maxLineSize bounds a single JSONL line. Bodies are capped by the recorder,
// but base64 payloads and large headers still make long lines.
const maxLineSize = 64 * 1024 * 1024

// ErrUnknownFormat is returned for data that is neither JSONL nor HAR.
var ErrUnknownFormat = errors.New("unrecognized format: expected JSONL entries or a HAR document")

// Item is one loaded entry with its compact JSON, so callers can rewrite it
// without re-shaping fields harlog does not model.
type Item struct {
	Entry har.Entry
	Raw   json.RawMessage
}

// Parse detects the format of data and decodes every entry.
func Parse(data []byte) (string, []Item, error) {
	format := DetectFormat(data)
	switch format {
	case FormatHAR:
		items, err := parseDocument(data)
		return format, items, err
	case FormatJSONL:
		items, err := parseLines(data)
		return format, items, err
	default:
		return format, nil, ErrUnknownFormat
	}
}

// ReadFile loads entries from a JSONL log or HAR document.
func ReadFile(path string) (string, []Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormatUnknown, nil, fmt.Errorf("reading file: %w", err)
	}
	format, items, err := Parse(data)
	if err != nil {
		return format, nil, fmt.Errorf("%s: %w", path, err)
	}
	return format, items, nil
}

func parseDocument(data []byte) ([]Item, error) {
	doc, err := har.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, doc.Len())
	for i, raw := range doc.Log.Entries {
		item, err := decodeItem(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseLines(data []byte) ([]Item, error) {
	var items []Item
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		item, err := decodeItem(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return items, nil
}

func decodeItem(raw []byte) (Item, error) {
	var e har.Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Item{}, fmt.Errorf("decoding entry: %w", err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return Item{}, fmt.Errorf("compacting entry: %w", err)
	}
	return Item{Entry: e, Raw: compact.Bytes()}, nil
}
