package harlog

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/sadopc/harlog/internal/body"
	"github.com/sadopc/harlog/internal/har"
)

const startedLayout = "2006-01-02T15:04:05.000Z"

func (r *Recorder) buildEntry(req *http.Request, resp *http.Response) har.Entry {
	entry := har.Entry{
		StartedDateTime: r.now().UTC().Format(startedLayout),
		Request:         r.buildRequest(req),
		Response:        har.PlaceholderResponse(),
	}
	if resp != nil && r.opts.IncludeResponse {
		entry.Response = r.buildResponse(resp)
	}
	return entry
}

func (r *Recorder) buildRequest(req *http.Request) har.Request {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	out := har.Request{
		Method:      method,
		URL:         requestURL(req),
		HTTPVersion: har.HTTPVersion,
		Cookies:     []har.NameValue{},
		Headers:     headerPairs(req.Header),
		QueryString: []har.NameValue{},
		HeadersSize: -1,
		BodySize:    -1,
	}
	if req.URL != nil {
		out.QueryString = queryPairs(req.URL.RawQuery)
	}

	data, err := body.Request(req)
	if err != nil {
		r.opts.Logger.Warn("harlog: request body unreadable, omitting postData", "error", err)
		return out
	}
	if len(data) == 0 {
		return out
	}

	ct := req.Header.Get("Content-Type")
	enc := body.Encode(data, ct, r.opts.MaxBodyChars)
	out.PostData = &har.PostData{
		MimeType: mimeOrDefault(ct),
		Text:     enc.Text,
		Encoding: enc.Encoding,
	}
	return out
}

func (r *Recorder) buildResponse(resp *http.Response) har.Response {
	ct := resp.Header.Get("Content-Type")
	out := har.Response{
		Status:      resp.StatusCode,
		StatusText:  statusText(resp),
		HTTPVersion: har.HTTPVersion,
		Headers:     headerPairs(resp.Header),
		Cookies:     []har.NameValue{},
		Content:     har.Content{MimeType: mimeOrDefault(ct)},
		RedirectURL: resp.Header.Get("Location"),
		HeadersSize: -1,
		BodySize:    -1,
	}

	data, err := body.Response(resp)
	if err != nil {
		r.opts.Logger.Warn("harlog: response body unreadable, omitting content", "error", err)
		return out
	}
	if len(data) > 0 {
		enc := body.Encode(data, ct, r.opts.MaxBodyChars)
		out.Content.Text = enc.Text
		out.Content.Encoding = enc.Encoding
		out.Content.Size = enc.Size
	}
	return out
}

// requestURL returns the absolute URL of req. Server-side requests only
// carry the request target, so scheme and host are rebuilt from the
// connection and the Host header.
func requestURL(req *http.Request) string {
	if req.URL == nil {
		return ""
	}
	if req.URL.IsAbs() || req.Host == "" {
		return req.URL.String()
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.SplitN(proto, ",", 2)[0]))
	}

	return scheme + "://" + req.Host + req.URL.RequestURI()
}

// headerPairs flattens h in sorted name order, one pair per value.
func headerPairs(h http.Header) []har.NameValue {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := []har.NameValue{}
	for _, name := range names {
		for _, v := range h[name] {
			pairs = append(pairs, har.NameValue{Name: name, Value: v})
		}
	}
	return pairs
}

// queryPairs splits a raw query in source order. url.ParseQuery would lose
// the ordering, and it drops pairs it cannot decode; those are kept raw here.
func queryPairs(rawQuery string) []har.NameValue {
	pairs := []har.NameValue{}
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		pairs = append(pairs, har.NameValue{Name: unescape(name), Value: unescape(value)})
	}
	return pairs
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}

// statusText takes the reason phrase from resp.Status ("200 OK") and falls
// back to the standard text for the code.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if reason, ok := strings.CutPrefix(resp.Status, code); ok {
		if reason = strings.TrimSpace(reason); reason != "" {
			return reason
		}
	}
	return http.StatusText(resp.StatusCode)
}

func mimeOrDefault(ct string) string {
	if ct == "" {
		return body.DefaultMimeType
	}
	return ct
}
