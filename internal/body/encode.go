package body

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sadopc/harlog/internal/har"
)

// DefaultMaxChars is the text length kept before truncation.
const DefaultMaxChars = 100_000

// DefaultMimeType is recorded when a message carries no Content-Type.
const DefaultMimeType = "application/octet-stream"

// Encoded is a body in the form stored in an entry.
type Encoded struct {
	Text     string
	Encoding string // "" for text, "base64" for opaque bytes
	Size     int    // characters of Text for text bodies, bytes for base64 bodies
}

// IsText reports whether a Content-Type value belongs to the text-like family:
// text/*, application/json, application/javascript, application/xml, and any
// type ending in +json or +xml. Parameters are ignored.
func IsText(contentType string) bool {
	if contentType == "" {
		return false
	}
	t := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch {
	case strings.HasPrefix(t, "text/"):
		return true
	case t == "application/json", t == "application/javascript", t == "application/xml":
		return true
	case strings.HasSuffix(t, "+json"), strings.HasSuffix(t, "+xml"):
		return true
	}
	return false
}

// Encode converts raw body bytes for storage. Text-like bodies are decoded as
// UTF-8 and truncated to maxChars; everything else is base64.
func Encode(data []byte, contentType string, maxChars int) Encoded {
	if IsText(contentType) {
		text := Truncate(DecodeText(data), maxChars)
		return Encoded{Text: text, Size: utf8.RuneCountInString(text)}
	}
	return Encoded{
		Text:     base64.StdEncoding.EncodeToString(data),
		Encoding: har.EncodingBase64,
		Size:     len(data),
	}
}

// DecodeText decodes UTF-8, dropping a leading byte order mark and replacing
// ill-formed sequences with U+FFFD.
func DecodeText(data []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// Truncate cuts text to maxChars characters and appends a marker stating how
// many characters were dropped. maxChars <= 0 selects DefaultMaxChars.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	n := utf8.RuneCountInString(text)
	if n <= maxChars {
		return text
	}

	cut := 0
	for i := 0; i < maxChars; i++ {
		_, size := utf8.DecodeRuneInString(text[cut:])
		cut += size
	}
	return text[:cut] + Marker(n-maxChars)
}

// Marker is the suffix appended to truncated text.
func Marker(omitted int) string {
	return fmt.Sprintf("\n...[truncated %d chars]", omitted)
}
