package importutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseJSONL(t *testing.T) {
	data := "{\"request\":{\"method\":\"GET\",\"url\":\"https://a.test/\"}}\n\n{ \"request\": { \"method\": \"POST\", \"url\": \"https://b.test/\" } }\n"

	format, items, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if format != FormatJSONL {
		t.Fatalf("format = %q, want jsonl", format)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1].Entry.Request.Method != "POST" || items[1].Entry.Request.URL != "https://b.test/" {
		t.Errorf("item 1 = %+v", items[1].Entry.Request)
	}
	if string(items[1].Raw) != `{"request":{"method":"POST","url":"https://b.test/"}}` {
		t.Errorf("raw not compacted: %s", items[1].Raw)
	}
}

func TestParseJSONLReportsBadLine(t *testing.T) {
	data := "{\"request\":{\"method\":\"GET\"}}\n{broken\n"

	_, _, err := Parse([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}

func TestParseHAR(t *testing.T) {
	data := `{"log":{"version":"1.2","creator":{"name":"x","version":"1"},"entries":[
		{"request":{"method":"GET","url":"https://a.test/"},"response":{"status":200}},
		{"request":{"method":"DELETE","url":"https://a.test/1"},"response":{"status":204},"_custom":true}
	]}}`

	format, items, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if format != FormatHAR || len(items) != 2 {
		t.Fatalf("format = %q, items = %d", format, len(items))
	}
	if items[1].Entry.Response.Status != 204 {
		t.Errorf("status = %d", items[1].Entry.Response.Status)
	}
	if !strings.Contains(string(items[1].Raw), `"_custom":true`) {
		t.Errorf("raw lost custom field: %s", items[1].Raw)
	}
}

func TestParseUnknown(t *testing.T) {
	_, _, err := Parse([]byte("hello"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.jsonl")
	if err := os.WriteFile(path, []byte("{\"request\":{\"method\":\"GET\"}}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	format, items, err := ReadFile(path)
	if err != nil || format != FormatJSONL || len(items) != 1 {
		t.Fatalf("ReadFile() = %q, %d items, %v", format, len(items), err)
	}

	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
