// Package sink persists serialized entries to the harlog destinations.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AppendLine appends one newline-terminated JSON line to path, creating the
// parent directories and the file when missing. The line is written with a
// single Write on an O_APPEND descriptor.
func AppendLine(path string, line []byte) error {
	if path == "" {
		return fmt.Errorf("appending jsonl: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating jsonl directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening jsonl file: %w", err)
	}
	if _, err := f.Write(ensureNewline(line)); err != nil {
		f.Close()
		return fmt.Errorf("writing jsonl file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing jsonl file: %w", err)
	}
	return nil
}

// Dump writes line to a console writer. It is the fallback when no file
// could take the entry.
func Dump(w io.Writer, line []byte) error {
	if w == nil {
		return nil
	}
	_, err := w.Write(ensureNewline(line))
	return err
}

func ensureNewline(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		return line
	}
	out := make([]byte, len(line)+1)
	copy(out, line)
	out[len(line)] = '\n'
	return out
}
