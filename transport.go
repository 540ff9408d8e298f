package harlog

import (
	"net/http"

	"github.com/sadopc/harlog/internal/body"
)

// Transport is an http.RoundTripper that records every exchange it carries.
// The response returned to the caller keeps a fully readable body.
type Transport struct {
	// Base performs the request. Defaults to http.DefaultTransport.
	Base http.RoundTripper
	// Recorder receives each exchange. Defaults to New(Options{}).
	Recorder *Recorder
}

// RoundTrip implements http.RoundTripper. Errors from Base are returned
// unchanged; the request is still recorded with a placeholder response.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := t.Recorder
	if rec == nil {
		rec = New(Options{})
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// RoundTrippers must not modify the caller's request.
	outreq := req.Clone(req.Context())
	if _, err := body.Request(outreq); err != nil {
		rec.opts.Logger.Warn("harlog: buffering request body failed", "error", err)
	}

	resp, err := base.RoundTrip(outreq)
	if err != nil {
		rec.Record(outreq, nil)
		return nil, err
	}
	rec.Record(outreq, resp)
	return resp, nil
}
