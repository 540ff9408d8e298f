package history

import (
	"time"

	"github.com/sadopc/harlog/internal/har"
)

// Entry represents a single recorded exchange in the history index.
type Entry struct {
	ID           string
	Started      time.Time
	Method       string
	URL          string
	Status       int
	MimeType     string
	RequestSize  int64
	ResponseSize int64
	Raw          string // single-line entry JSON
}

// FromHAR builds a history row from an entry and its serialized form.
func FromHAR(e har.Entry, raw []byte) Entry {
	started, err := time.Parse(time.RFC3339Nano, e.StartedDateTime)
	if err != nil {
		started = time.Now()
	}

	mime := e.Response.Content.MimeType
	if mime == "" && e.Request.PostData != nil {
		mime = e.Request.PostData.MimeType
	}

	return Entry{
		Started:      started,
		Method:       e.Request.Method,
		URL:          e.Request.URL,
		Status:       e.Response.Status,
		MimeType:     mime,
		RequestSize:  int64(len(e.Request.BodyText())),
		ResponseSize: int64(e.Response.Content.Size),
		Raw:          string(trimNewline(raw)),
	}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
