// Package history keeps a queryable SQLite index of recorded entries.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	_ "modernc.org/sqlite"
)

// timestamps are stored fixed-width so text ordering matches time ordering.
const tsLayout = "2006-01-02T15:04:05.000000000Z"

const selectColumns = `SELECT id, started, method, url, status, mime_type, request_size, response_size, entry FROM history`

// Store manages the history index.
type Store struct {
	db *sql.DB
}

// Filter narrows ListFiltered results. Zero fields are ignored.
type Filter struct {
	Method     string
	StatusCode int
	StatusMin  int
	StatusMax  int
	URLPattern string
	Since      time.Time
	Until      time.Time
	Limit      int
}

// NewStore opens (or creates) the history database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating history directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// One connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configuring history db: %w", err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id            TEXT PRIMARY KEY,
			started       TEXT NOT NULL,
			method        TEXT NOT NULL,
			url           TEXT NOT NULL,
			status        INTEGER,
			mime_type     TEXT,
			request_size  INTEGER,
			response_size INTEGER,
			entry         TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_started ON history(started DESC);
		CREATE INDEX IF NOT EXISTS idx_history_url ON history(url);
	`)
	if err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	return nil
}

// Add inserts a new entry and returns its ID. An empty e.ID gets a new UUID.
func (s *Store) Add(e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Started.IsZero() {
		e.Started = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO history (id, started, method, url, status, mime_type, request_size, response_size, entry)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Started.UTC().Format(tsLayout), e.Method, e.URL, e.Status, e.MimeType,
		e.RequestSize, e.ResponseSize, e.Raw,
	)
	if err != nil {
		return "", fmt.Errorf("inserting history: %w", err)
	}
	return e.ID, nil
}

// List returns the most recent entries.
func (s *Store) List(limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(selectColumns+`
		ORDER BY started DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListFiltered returns the most recent entries matching f.
func (s *Store) ListFiltered(f Filter) ([]Entry, error) {
	var where []string
	var args []any

	if f.Method != "" {
		where = append(where, "method = ?")
		args = append(args, strings.ToUpper(f.Method))
	}
	if f.StatusCode != 0 {
		where = append(where, "status = ?")
		args = append(args, f.StatusCode)
	}
	if f.StatusMin != 0 {
		where = append(where, "status >= ?")
		args = append(args, f.StatusMin)
	}
	if f.StatusMax != 0 {
		where = append(where, "status <= ?")
		args = append(args, f.StatusMax)
	}
	if f.URLPattern != "" {
		where = append(where, "url LIKE ?")
		args = append(args, "%"+f.URLPattern+"%")
	}
	if !f.Since.IsZero() {
		where = append(where, "started >= ?")
		args = append(args, f.Since.UTC().Format(tsLayout))
	}
	if !f.Until.IsZero() {
		where = append(where, "started <= ?")
		args = append(args, f.Until.UTC().Format(tsLayout))
	}

	query := selectColumns
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " ORDER BY started DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("filtering history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search searches history by URL substring.
func (s *Store) Search(query string) ([]Entry, error) {
	return s.ListFiltered(Filter{URLPattern: query})
}

// FuzzyFind ranks the most recent 1000 entries by fuzzy match of their URL
// against query, best match first.
func (s *Store) FuzzyFind(query string, limit int) ([]Entry, error) {
	recent, err := s.List(1000, 0)
	if err != nil {
		return nil, err
	}
	urls := make([]string, len(recent))
	for i, e := range recent {
		urls[i] = e.URL
	}

	matches := fuzzy.Find(query, urls)
	if limit <= 0 {
		limit = 50
	}
	var out []Entry
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, recent[m.Index])
	}
	return out, nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// Delete removes one entry.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM history WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting history entry: %w", err)
	}
	return nil
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM history")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var started string
		var mime sql.NullString
		var status, reqSize, respSize sql.NullInt64
		err := rows.Scan(&e.ID, &started, &e.Method, &e.URL, &status, &mime,
			&reqSize, &respSize, &e.Raw)
		if err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Started, _ = time.Parse(tsLayout, started)
		e.Status = int(status.Int64)
		e.MimeType = mime.String
		e.RequestSize = reqSize.Int64
		e.ResponseSize = respSize.Int64
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
