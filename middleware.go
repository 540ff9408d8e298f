package harlog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/sadopc/harlog/internal/body"
)

// Middleware records each request served by next together with the response
// it wrote. What the client receives is not altered.
func Middleware(next http.Handler, rec *Recorder) http.Handler {
	if rec == nil {
		rec = New(Options{})
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := body.Request(r); err != nil {
			rec.opts.Logger.Warn("harlog: buffering request body failed", "error", err)
		}

		capture := &responseCapture{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default if WriteHeader not called
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(capture, r)

		rec.Record(r, capture.response(r))
	})
}

// responseCapture tees the handler's response into a buffer.
type responseCapture struct {
	http.ResponseWriter
	statusCode  int
	header      http.Header
	body        *bytes.Buffer
	wroteHeader bool
}

// WriteHeader captures the status code and delegates to the underlying ResponseWriter
func (rc *responseCapture) WriteHeader(code int) {
	if !rc.wroteHeader {
		rc.statusCode = code
		rc.header = rc.ResponseWriter.Header().Clone()
		rc.wroteHeader = true
	}
	rc.ResponseWriter.WriteHeader(code)
}

// Write captures the response body and delegates to the underlying ResponseWriter
func (rc *responseCapture) Write(b []byte) (int, error) {
	if !rc.wroteHeader {
		rc.WriteHeader(http.StatusOK)
	}
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

// Flush lets streaming handlers keep working behind the middleware.
func (rc *responseCapture) Flush() {
	if f, ok := rc.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack hands the connection to handlers that take it over, such as
// WebSocket upgrades. Bytes written after a hijack bypass the capture, so
// the recorded response holds only what was written before it.
func (rc *responseCapture) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rc.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("harlog: %T does not support hijacking", rc.ResponseWriter)
	}
	return h.Hijack()
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rc *responseCapture) Unwrap() http.ResponseWriter {
	return rc.ResponseWriter
}

func (rc *responseCapture) response(req *http.Request) *http.Response {
	header := rc.header
	if header == nil {
		header = rc.ResponseWriter.Header().Clone()
	}
	if header == nil {
		header = http.Header{}
	}
	// Content-Type sniffing happens inside the server; mirror it so the
	// body is classified the way the client saw it.
	if header.Get("Content-Type") == "" && rc.body.Len() > 0 {
		header.Set("Content-Type", http.DetectContentType(rc.body.Bytes()))
	}
	return &http.Response{
		Status:        strconv.Itoa(rc.statusCode) + " " + http.StatusText(rc.statusCode),
		StatusCode:    rc.statusCode,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(rc.body.Bytes())),
		ContentLength: int64(rc.body.Len()),
		Request:       req,
	}
}
