package har

import (
	"errors"
	"testing"
)

func FuzzParseDocument(f *testing.F) {
	// Seed: document written by harlog
	f.Add([]byte(`{
		"log": {
			"version": "1.2",
			"creator": {"name": "harlog", "version": "1.0.0"},
			"entries": [
				{
					"startedDateTime": "2024-01-01T00:00:00.000Z",
					"time": 0,
					"request": {
						"method": "POST",
						"url": "https://example.com/api?x=1",
						"httpVersion": "HTTP/1.1",
						"cookies": [],
						"headers": [{"name": "Content-Type", "value": "application/json"}],
						"queryString": [{"name": "x", "value": "1"}],
						"postData": {"mimeType": "application/json", "text": "{\"foo\":\"bar\"}"},
						"headersSize": -1,
						"bodySize": -1
					},
					"response": {
						"status": 0,
						"statusText": "",
						"httpVersion": "HTTP/1.1",
						"headers": [],
						"cookies": [],
						"content": {"size": 0, "mimeType": "", "text": ""},
						"redirectURL": "",
						"headersSize": -1,
						"bodySize": -1
					},
					"cache": {},
					"timings": {"send": 0, "wait": 0, "receive": 0},
					"serverIPAddress": "",
					"connection": ""
				}
			]
		}
	}`))

	// Seed: browser export with pages
	f.Add([]byte(`{"log":{"version":"1.2","creator":{"name":"Browser","version":"1"},"pages":[{"id":"p"}],"entries":[]}}`))

	// Seed: creator in an unexpected shape
	f.Add([]byte(`{"log":{"creator":"someone","entries":[{}]}}`))

	// Invalid inputs
	f.Add([]byte(`not json`))
	f.Add([]byte(`{"log":{"entries":{}}}`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`null`))
	f.Add([]byte(``))

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := ParseDocument(data)
		if err != nil {
			if doc != nil {
				t.Fatal("ParseDocument returned a document with an error")
			}
			return
		}
		if doc.Log.Entries == nil {
			t.Fatal("ParseDocument returned nil entries without error")
		}

		before := doc.Len()
		doc.AppendRaw([]byte(`{"request":{"method":"GET"}}`))

		out, err := doc.Marshal()
		if err != nil {
			t.Fatalf("Marshal failed after successful parse: %v", err)
		}
		again, err := ParseDocument(out)
		if err != nil {
			if errors.Is(err, ErrNotDocument) {
				t.Fatal("rewritten document lost its entries array")
			}
			t.Fatalf("rewritten document does not parse: %v", err)
		}
		if again.Len() != before+1 {
			t.Fatalf("expected %d entries after rewrite, got %d", before+1, again.Len())
		}
	})
}
