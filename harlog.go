// Package harlog records HTTP request/response pairs as HAR entries. Each
// entry is appended to a JSON lines file and, optionally, merged into a HAR
// document and indexed in a SQLite history database.
//
// Recording never fails from the caller's point of view: problems are
// reported as warnings on the configured logger and the remaining
// destinations are still written.
package harlog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sadopc/harlog/internal/core/history"
	"github.com/sadopc/harlog/internal/har"
	"github.com/sadopc/harlog/internal/sink"
)

// Recorder writes entries using a fixed set of options.
type Recorder struct {
	opts Options
	now  func() time.Time
}

// New returns a Recorder with defaults applied to opts.
func New(opts Options) *Recorder {
	return &Recorder{opts: opts.withDefaults(), now: time.Now}
}

// Options returns the resolved options.
func (r *Recorder) Options() Options {
	return r.opts
}

// Record logs one exchange with the given options. See Recorder.Record.
func Record(req *http.Request, resp *http.Response, opts Options) {
	New(opts).Record(req, resp)
}

// Record builds an entry for req (and resp when IncludeResponse is set) and
// writes it to every configured destination. Bodies are buffered and put
// back so the caller can still read them. resp may be nil.
func (r *Recorder) Record(req *http.Request, resp *http.Response) {
	log := r.opts.Logger
	if req == nil {
		log.Warn("harlog: nil request, nothing recorded")
		return
	}

	var entry har.Entry
	var line []byte
	ok := r.step("build entry", func() error {
		entry = r.buildEntry(req, resp)
		var err error
		line, err = har.MarshalEntry(entry)
		return err
	})
	if !ok {
		return
	}

	if !r.opts.DisableJSONL {
		r.step("jsonl", func() error { return r.writeLine(line) })
	}
	if !hasFilesystem {
		return
	}
	if r.opts.HARFilePath != "" {
		r.step("har document", func() error { return r.writeDocument(line) })
	}
	if r.opts.HistoryPath != "" {
		r.step("history", func() error { return r.writeHistory(entry, line) })
	}
}

// step runs fn, turning a returned error or a panic into a warning.
func (r *Recorder) step(name string, fn func() error) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			r.opts.Logger.Warn("harlog: recovered from panic", "step", name, "panic", fmt.Sprint(v))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		r.opts.Logger.Warn("harlog: step failed", "step", name, "error", err)
		return false
	}
	return true
}

func (r *Recorder) writeLine(line []byte) error {
	if !hasFilesystem {
		return sink.Dump(r.opts.Console, line)
	}
	if err := sink.AppendLine(r.opts.JSONLPath, line); err != nil {
		r.opts.Logger.Warn("harlog: failed to write JSONL, dumping entry to console",
			"path", r.opts.JSONLPath, "error", err)
		return sink.Dump(r.opts.Console, line)
	}
	return nil
}

func (r *Recorder) writeDocument(line []byte) error {
	creator := har.Creator{Name: r.opts.CreatorName, Version: r.opts.CreatorVersion}
	err := sink.MergeEntry(r.opts.HARFilePath, line, creator, func(discarded error) {
		r.opts.Logger.Warn("harlog: existing HAR document unusable, starting a new one",
			"path", r.opts.HARFilePath, "error", discarded)
	})
	if err != nil {
		return fmt.Errorf("updating %s: %w", r.opts.HARFilePath, err)
	}
	return nil
}

func (r *Recorder) writeHistory(entry har.Entry, line []byte) error {
	store, err := history.NewStore(r.opts.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Add(history.FromHAR(entry, line))
	return err
}
