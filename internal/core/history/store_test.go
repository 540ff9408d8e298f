package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sadopc/harlog/internal/har"
)

func TestStore(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	now := time.Now()
	id1, err := store.Add(Entry{
		Method:   "GET",
		URL:      "https://api.example.com/users",
		Status:   200,
		Started:  now.Add(-time.Minute),
		Raw:      `{"request":{"method":"GET"}}`,
		MimeType: "application/json",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id1 == "" {
		t.Error("expected generated ID")
	}

	id2, err := store.Add(Entry{
		Method:       "POST",
		URL:          "https://api.example.com/users",
		Status:       201,
		RequestSize:  15,
		ResponseSize: 8,
		Started:      now,
		Raw:          `{"request":{"method":"POST"}}`,
	})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := store.List(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Most recent first
	if entries[0].ID != id2 {
		t.Errorf("expected most recent first, got id %s", entries[0].ID)
	}
	if entries[0].RequestSize != 15 || entries[0].ResponseSize != 8 {
		t.Errorf("sizes not round-tripped: %+v", entries[0])
	}
	if entries[1].MimeType != "application/json" {
		t.Errorf("mime type = %q", entries[1].MimeType)
	}

	results, err := store.Search("example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 search results, got %d", len(results))
	}

	results, err = store.Search("nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	entries, err = store.List(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries after clear, got %d", len(entries))
	}
}

func TestStore_ListFiltered(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	now := time.Now()
	store.Add(Entry{Method: "GET", URL: "https://api.example.com/users", Status: 200, Started: now.Add(-3 * time.Hour)})
	store.Add(Entry{Method: "POST", URL: "https://api.example.com/users", Status: 201, Started: now.Add(-2 * time.Hour)})
	store.Add(Entry{Method: "GET", URL: "https://other.com/data", Status: 404, Started: now.Add(-1 * time.Hour)})
	store.Add(Entry{Method: "DELETE", URL: "https://api.example.com/users/1", Status: 500, Started: now})

	entries, err := store.ListFiltered(Filter{Method: "get"})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 GET entries, got %d", len(entries))
	}

	entries, err = store.ListFiltered(Filter{StatusCode: 404})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry with status 404, got %d", len(entries))
	}

	entries, err = store.ListFiltered(Filter{StatusMin: 200, StatusMax: 299})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries with 2xx status, got %d", len(entries))
	}

	entries, err = store.ListFiltered(Filter{URLPattern: "example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries matching example.com, got %d", len(entries))
	}

	entries, err = store.ListFiltered(Filter{Since: now.Add(-90 * time.Minute)})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 recent entries, got %d", len(entries))
	}

	entries, err = store.ListFiltered(Filter{Until: now.Add(-90 * time.Minute), Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Method != "POST" {
		t.Errorf("expected newest older entry (POST), got %+v", entries)
	}
}

func TestStore_CountAndDelete(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id1, _ := store.Add(Entry{Method: "GET", URL: "https://example.com", Started: time.Now()})
	store.Add(Entry{Method: "POST", URL: "https://example.com", Started: time.Now()})

	count, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}

	if err := store.Delete(id1); err != nil {
		t.Fatal(err)
	}

	count, err = store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected count 1 after delete, got %d", count)
	}
}

func TestStore_StartedRoundTrip(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	started := time.Date(2024, 6, 15, 10, 30, 0, 123456789, time.UTC)
	if _, err := store.Add(Entry{Method: "GET", URL: "https://example.com", Started: started}); err != nil {
		t.Fatal(err)
	}

	entries, err := store.List(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !entries[0].Started.Equal(started) {
		t.Errorf("started mismatch: got %v, want %v", entries[0].Started, started)
	}
}

func TestStore_FuzzyFind(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.Add(Entry{Method: "GET", URL: "https://api.example.com/users", Started: time.Now()})
	store.Add(Entry{Method: "GET", URL: "https://cdn.example.com/logo.png", Started: time.Now()})
	store.Add(Entry{Method: "GET", URL: "https://other.test/health", Started: time.Now()})

	found, err := store.FuzzyFind("usrs", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) == 0 || found[0].URL != "https://api.example.com/users" {
		t.Errorf("expected users URL first, got %+v", found)
	}

	found, err = store.FuzzyFind("zzzz", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 0 {
		t.Errorf("expected no matches, got %d", len(found))
	}
}

func TestStore_FileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "history.db")

	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add(Entry{Method: "GET", URL: "https://a.test", Started: time.Now()}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	count, err := reopened.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 persisted entry, got %d", count)
	}
}

func TestFromHAR(t *testing.T) {
	e := har.Entry{
		StartedDateTime: "2024-01-01T12:00:00.250Z",
		Request: har.Request{
			Method:   "POST",
			URL:      "https://example.com/api",
			PostData: &har.PostData{MimeType: "application/json", Text: `{"a":1}`},
		},
		Response: har.PlaceholderResponse(),
	}

	row := FromHAR(e, []byte(`{"x":1}`+"\n"))
	if row.Method != "POST" || row.URL != "https://example.com/api" {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.MimeType != "application/json" {
		t.Errorf("mime type should fall back to request, got %q", row.MimeType)
	}
	if row.RequestSize != 7 {
		t.Errorf("RequestSize = %d, want 7", row.RequestSize)
	}
	if row.Raw != `{"x":1}` {
		t.Errorf("Raw = %q", row.Raw)
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 250_000_000, time.UTC)
	if !row.Started.Equal(want) {
		t.Errorf("Started = %v, want %v", row.Started, want)
	}
}
