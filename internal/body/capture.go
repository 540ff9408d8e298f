// Package body reads HTTP message bodies without taking them away from their
// owner, and turns the bytes into the text or base64 form stored in entries.
package body

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// replayBody serves buffered bytes and closes the body it replaced.
type replayBody struct {
	io.Reader
	closer io.Closer
}

func (b *replayBody) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// restore builds a replacement for orig that yields data first. When the
// original read stopped with an error, the remainder of orig follows so the
// owner observes the same failure.
func restore(data []byte, orig io.ReadCloser, readErr error) io.ReadCloser {
	if readErr != nil {
		return &replayBody{Reader: io.MultiReader(bytes.NewReader(data), orig), closer: orig}
	}
	return &replayBody{Reader: bytes.NewReader(data), closer: orig}
}

// Request returns the request body. When req.GetBody is set a fresh copy is
// read from it; otherwise req.Body is buffered and replaced, and GetBody is
// installed so later readers get their own copy.
func Request(req *http.Request) ([]byte, error) {
	if req == nil {
		return nil, nil
	}
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("getting request body: %w", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		return data, nil
	}
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	data, err := io.ReadAll(req.Body)
	req.Body = restore(data, req.Body, err)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return data, nil
}

// Response returns the response body and replaces resp.Body with a reader
// over the buffered bytes.
func Response(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil || resp.Body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body = restore(data, resp.Body, err)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}
