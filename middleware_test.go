package harlog

import (
	"bufio"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddlewareRecordsExchange(t *testing.T) {
	opts, _ := testOptions(t)
	opts.IncludeResponse = true

	var handlerSaw string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		handlerSaw = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7}`))
	}), New(opts))

	req := httptest.NewRequest("POST", "/users?sort=name", strings.NewReader(`{"name":"ada"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if handlerSaw != `{"name":"ada"}` {
		t.Errorf("handler read %q", handlerSaw)
	}
	if rr.Code != http.StatusCreated || rr.Body.String() != `{"id":7}` {
		t.Errorf("client got %d %q", rr.Code, rr.Body.String())
	}

	entries := readEntries(t, opts.JSONLPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Request.URL != "http://example.com/users?sort=name" {
		t.Errorf("url = %q", e.Request.URL)
	}
	if e.Request.PostData == nil || e.Request.PostData.Text != `{"name":"ada"}` {
		t.Errorf("postData = %+v", e.Request.PostData)
	}
	if e.Response.Status != http.StatusCreated || e.Response.StatusText != "Created" {
		t.Errorf("status = %d %q", e.Response.Status, e.Response.StatusText)
	}
	if e.Response.Content.Text != `{"id":7}` || e.Response.Content.MimeType != "application/json" {
		t.Errorf("content = %+v", e.Response.Content)
	}
}

func TestMiddlewareImplicitStatusAndSniffing(t *testing.T) {
	opts, _ := testOptions(t)
	opts.IncludeResponse = true

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body>hi</body></html>")
	}), New(opts))

	req := httptest.NewRequest("GET", "/", nil)
	req.TLS = &tls.ConnectionState{}
	h.ServeHTTP(httptest.NewRecorder(), req)

	e := readEntries(t, opts.JSONLPath)[0]
	if e.Request.URL != "https://example.com/" {
		t.Errorf("url = %q", e.Request.URL)
	}
	if e.Response.Status != http.StatusOK {
		t.Errorf("status = %d", e.Response.Status)
	}
	if !strings.HasPrefix(e.Response.Content.MimeType, "text/html") {
		t.Errorf("mimeType = %q", e.Response.Content.MimeType)
	}
	if e.Response.Content.Text != "<html><body>hi</body></html>" {
		t.Errorf("content = %+v", e.Response.Content)
	}
}

func TestMiddlewareForwardedProto(t *testing.T) {
	opts, _ := testOptions(t)
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), New(opts))

	req := httptest.NewRequest("GET", "http://internal.local/health", nil)
	req.URL.Scheme, req.URL.Host = "", ""
	req.Header.Set("X-Forwarded-Proto", "https")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got := readEntries(t, opts.JSONLPath)[0].Request.URL; got != "https://internal.local/health" {
		t.Errorf("url = %q", got)
	}
}

func TestMiddlewareHeadersSnapshotAtWriteHeader(t *testing.T) {
	opts, _ := testOptions(t)
	opts.IncludeResponse = true
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Sent", "yes")
		w.WriteHeader(http.StatusNoContent)
		w.Header().Set("X-Late", "ignored")
	}), New(opts))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("DELETE", "/x", nil))

	resp := readEntries(t, opts.JSONLPath)[0].Response
	var names []string
	for _, h := range resp.Headers {
		names = append(names, h.Name)
	}
	if strings.Join(names, ",") != "X-Sent" {
		t.Errorf("headers = %v, want only X-Sent", names)
	}
	if resp.Content.Text != "" || resp.Content.Size != 0 {
		t.Errorf("content = %+v", resp.Content)
	}
}

// hijackRecorder is a ResponseRecorder that can be hijacked.
type hijackRecorder struct {
	*httptest.ResponseRecorder
	hijacked bool
}

func (h *hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	server, client := net.Pipe()
	client.Close()
	return server, bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(server)), nil
}

func TestMiddlewareHijack(t *testing.T) {
	opts, _ := testOptions(t)
	var hijackErr error
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("writer behind middleware is not a Hijacker")
		}
		conn, _, err := hj.Hijack()
		hijackErr = err
		if conn != nil {
			conn.Close()
		}
	}), New(opts))

	rw := &hijackRecorder{ResponseRecorder: httptest.NewRecorder()}
	h.ServeHTTP(rw, httptest.NewRequest("GET", "/ws", nil))

	if hijackErr != nil || !rw.hijacked {
		t.Errorf("hijack not delegated: err=%v hijacked=%v", hijackErr, rw.hijacked)
	}
	if n := len(readEntries(t, opts.JSONLPath)); n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}
}

func TestMiddlewareHijackUnsupported(t *testing.T) {
	opts, _ := testOptions(t)
	var hijackErr error
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, hijackErr = w.(http.Hijacker).Hijack()
	}), New(opts))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ws", nil))

	if hijackErr == nil {
		t.Error("expected an error when the underlying writer cannot hijack")
	}
}
