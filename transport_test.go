package harlog

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestTransportRecordsExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"echo":` + string(got) + `}`))
	}))
	defer srv.Close()

	opts, _ := testOptions(t)
	opts.IncludeResponse = true
	client := &http.Client{Transport: &Transport{Recorder: New(opts)}}

	resp, err := client.Post(srv.URL+"/items?b=2&a=1", "application/json", strings.NewReader(`{"n":1}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"echo":{"n":1}}` {
		t.Errorf("client read %q", body)
	}

	entries := readEntries(t, opts.JSONLPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Request.PostData == nil || e.Request.PostData.Text != `{"n":1}` {
		t.Errorf("postData = %+v", e.Request.PostData)
	}
	if e.Request.QueryString[0].Name != "b" || e.Request.QueryString[1].Name != "a" {
		t.Errorf("query order lost: %+v", e.Request.QueryString)
	}
	if e.Response.Status != http.StatusAccepted || e.Response.StatusText != "Accepted" {
		t.Errorf("response status = %d %q", e.Response.Status, e.Response.StatusText)
	}
	if e.Response.Content.Text != `{"echo":{"n":1}}` {
		t.Errorf("content = %+v", e.Response.Content)
	}
}

func TestTransportErrorStillRecorded(t *testing.T) {
	opts, _ := testOptions(t)
	opts.IncludeResponse = true
	dialErr := errors.New("connection refused")
	tr := &Transport{
		Base: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			io.ReadAll(req.Body)
			return nil, dialErr
		}),
		Recorder: New(opts),
	}

	req := newRequest(t, "POST", "https://down.example/", "text/plain", []byte("ping"))
	_, err := tr.RoundTrip(req)
	if !errors.Is(err, dialErr) {
		t.Fatalf("err = %v, want %v", err, dialErr)
	}

	e := readEntries(t, opts.JSONLPath)[0]
	if e.Request.PostData == nil || e.Request.PostData.Text != "ping" {
		t.Errorf("postData = %+v", e.Request.PostData)
	}
	if e.Response.Status != 0 || len(e.Response.Headers) != 0 {
		t.Errorf("expected placeholder response, got %+v", e.Response)
	}
}

func TestTransportBaseSeesFullBody(t *testing.T) {
	opts, _ := testOptions(t)
	var seen string
	tr := &Transport{
		Base: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			b, _ := io.ReadAll(req.Body)
			seen = string(b)
			return &http.Response{StatusCode: 204, Header: http.Header{}, Body: http.NoBody, Request: req}, nil
		}),
		Recorder: New(opts),
	}

	req := newRequest(t, "PUT", "https://example.com/x", "text/plain", nil)
	req.Body = opaqueBody{strings.NewReader("payload")}
	if _, err := tr.RoundTrip(req); err != nil {
		t.Fatal(err)
	}
	if seen != "payload" {
		t.Errorf("base transport read %q", seen)
	}
	if pd := readEntries(t, opts.JSONLPath)[0].Request.PostData; pd == nil || pd.Text != "payload" {
		t.Errorf("postData = %+v", pd)
	}
}
