// Package har holds the HAR 1.2 shapes written by harlog and the document
// envelope that collects them.
package har

import "strings"

// Version is the HAR format version written into new documents.
const Version = "1.2"

// HTTPVersion is the protocol label recorded on every request and response.
const HTTPVersion = "HTTP/1.1"

// EncodingBase64 marks postData/content text holding base64 of opaque bytes.
const EncodingBase64 = "base64"

// Entry represents a single request/response pair.
type Entry struct {
	StartedDateTime string   `json:"startedDateTime"`
	Time            float64  `json:"time"`
	Request         Request  `json:"request"`
	Response        Response `json:"response"`
	Cache           Cache    `json:"cache"`
	Timings         Timings  `json:"timings"`
	ServerIPAddress string   `json:"serverIPAddress"`
	Connection      string   `json:"connection"`
}

// Request is the request portion of an entry.
type Request struct {
	Method      string      `json:"method"`
	URL         string      `json:"url"`
	HTTPVersion string      `json:"httpVersion"`
	Cookies     []NameValue `json:"cookies"`
	Headers     []NameValue `json:"headers"`
	QueryString []NameValue `json:"queryString"`
	PostData    *PostData   `json:"postData,omitempty"`
	HeadersSize int         `json:"headersSize"`
	BodySize    int         `json:"bodySize"`
}

// Response is the response portion of an entry.
type Response struct {
	Status      int         `json:"status"`
	StatusText  string      `json:"statusText"`
	HTTPVersion string      `json:"httpVersion"`
	Headers     []NameValue `json:"headers"`
	Cookies     []NameValue `json:"cookies"`
	Content     Content     `json:"content"`
	RedirectURL string      `json:"redirectURL"`
	HeadersSize int         `json:"headersSize"`
	BodySize    int         `json:"bodySize"`
}

// NameValue is a name/value pair used for headers, cookies and query params.
type NameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData is the body of a request.
type PostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// Content is the body of a response.
type Content struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// Cache is always written empty; harlog does not observe caches.
type Cache struct{}

// Timings holds timing info for an entry. harlog never measures the network,
// so every field stays zero.
type Timings struct {
	Send    float64 `json:"send"`
	Wait    float64 `json:"wait"`
	Receive float64 `json:"receive"`
}

// PlaceholderResponse returns the zero-value response written when no
// response was captured, so every entry has the same shape.
func PlaceholderResponse() Response {
	return Response{
		Status:      0,
		StatusText:  "",
		HTTPVersion: HTTPVersion,
		Headers:     []NameValue{},
		Cookies:     []NameValue{},
		Content:     Content{Size: 0, MimeType: "", Text: ""},
		RedirectURL: "",
		HeadersSize: -1,
		BodySize:    -1,
	}
}

// IsPlaceholder reports whether r carries no captured response.
func (r Response) IsPlaceholder() bool {
	return r.Status == 0 && r.StatusText == "" && r.Content.Text == "" && len(r.Headers) == 0
}

// BodyText returns the request body text, or "" when none was captured.
func (r Request) BodyText() string {
	if r.PostData == nil {
		return ""
	}
	return r.PostData.Text
}

// Header returns the first value recorded for name, compared case-insensitively.
func Header(pairs []NameValue, name string) string {
	for _, p := range pairs {
		if strings.EqualFold(p.Name, name) {
			return p.Value
		}
	}
	return ""
}
