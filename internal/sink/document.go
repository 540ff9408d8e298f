package sink

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sadopc/harlog/internal/har"
)

// LoadDocument reads the HAR document at path. A missing, unreadable or
// malformed file yields a fresh document with the given creator. discarded
// is non-nil only when a file existed but could not be used; its content
// will be replaced on the next write.
func LoadDocument(path string, creator har.Creator) (doc *har.Document, discarded error) {
	fresh := har.NewDocument(creator.Name, creator.Version)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fresh, nil
		}
		return fresh, fmt.Errorf("reading HAR document: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return fresh, nil
	}

	doc, err = har.ParseDocument(data)
	if err != nil {
		return fresh, err
	}
	return doc, nil
}

// WriteDocument rewrites the whole document at path.
func WriteDocument(path string, doc *har.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating HAR directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing HAR document: %w", err)
	}
	return nil
}

// MergeEntry performs the read-modify-write cycle for one serialized entry.
// onDiscard, when set, is told about an existing document that could not be
// used and is about to be overwritten. The cycle holds no lock; concurrent
// writers to the same path can lose entries.
func MergeEntry(path string, entry []byte, creator har.Creator, onDiscard func(error)) error {
	doc, discarded := LoadDocument(path, creator)
	if discarded != nil && onDiscard != nil {
		onDiscard(discarded)
	}
	doc.AppendRaw(trimNewline(entry))
	return WriteDocument(path, doc)
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
