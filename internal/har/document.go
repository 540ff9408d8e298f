package har

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotDocument is returned when JSON data lacks a log object with an
// entries array.
var ErrNotDocument = errors.New("not a HAR document: missing log.entries array")

// Creator identifies the tool that created the HAR.
type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Document is the {"log": {...}} envelope merged on disk. Root members
// other than log are kept as read and written back in their original order.
type Document struct {
	Log Log `json:"log"`

	members []member
}

// Log is the top-level log object. Members other than entries are carried as
// raw JSON so an existing document keeps them verbatim across rewrites, and
// existing entries are never re-shaped. Members harlog does not name, such
// as "_"-prefixed custom fields, survive too.
type Log struct {
	Version json.RawMessage   `json:"version,omitempty"`
	Creator json.RawMessage   `json:"creator,omitempty"`
	Browser json.RawMessage   `json:"browser,omitempty"`
	Pages   json.RawMessage   `json:"pages,omitempty"`
	Entries []json.RawMessage `json:"entries"`
	Comment json.RawMessage   `json:"comment,omitempty"`

	members []member
}

// member is one key of a JSON object, in source order.
type member struct {
	key   string
	value json.RawMessage
}

// logKeys is the order used for members a document did not already have.
var logKeys = []string{"version", "creator", "browser", "pages", "entries", "comment"}

type (
	documentFields Document
	logFields      Log
)

// UnmarshalJSON decodes the log and remembers every root member.
func (d *Document) UnmarshalJSON(data []byte) error {
	var f documentFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	members, err := readMembers(data)
	if err != nil {
		return err
	}
	*d = Document(f)
	d.members = members
	return nil
}

// MarshalJSON writes root members in their original order with the current
// log in place of the one that was read.
func (d Document) MarshalJSON() ([]byte, error) {
	logJSON, err := json.Marshal(d.Log)
	if err != nil {
		return nil, err
	}
	var obj objectWriter
	wroteLog := false
	for _, m := range d.members {
		if m.key == "log" {
			if !wroteLog {
				obj.add("log", logJSON)
				wroteLog = true
			}
			continue
		}
		obj.add(m.key, m.value)
	}
	if !wroteLog {
		obj.add("log", logJSON)
	}
	return obj.bytes(), nil
}

// UnmarshalJSON decodes the named members and remembers all of them.
func (l *Log) UnmarshalJSON(data []byte) error {
	var f logFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	members, err := readMembers(data)
	if err != nil {
		return err
	}
	*l = Log(f)
	l.members = members
	return nil
}

// MarshalJSON writes members in the order they were read. Named members take
// their current field values; new ones follow in logKeys order.
func (l Log) MarshalJSON() ([]byte, error) {
	entries := l.Entries
	if entries == nil {
		entries = []json.RawMessage{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	named := map[string]json.RawMessage{
		"version": l.Version,
		"creator": l.Creator,
		"browser": l.Browser,
		"pages":   l.Pages,
		"entries": entriesJSON,
		"comment": l.Comment,
	}

	var obj objectWriter
	written := map[string]bool{}
	for _, m := range l.members {
		v, isNamed := named[m.key]
		if !isNamed {
			obj.add(m.key, m.value)
			continue
		}
		if !written[m.key] && len(v) > 0 {
			obj.add(m.key, v)
		}
		written[m.key] = true
	}
	for _, k := range logKeys {
		if !written[k] && len(named[k]) > 0 {
			obj.add(k, named[k])
		}
	}
	return obj.bytes(), nil
}

// readMembers lists the members of a JSON object in source order.
func readMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("expected JSON object")
	}
	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, member{key: key, value: value})
	}
	return members, nil
}

// objectWriter builds a compact JSON object from raw member values.
type objectWriter struct {
	buf bytes.Buffer
}

func (w *objectWriter) add(key string, value json.RawMessage) {
	if w.buf.Len() == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(value)
}

func (w *objectWriter) bytes() []byte {
	if w.buf.Len() == 0 {
		return []byte("{}")
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}

// NewDocument returns an empty version 1.2 document.
func NewDocument(creatorName, creatorVersion string) *Document {
	version, _ := json.Marshal(Version)
	creator, _ := json.Marshal(Creator{Name: creatorName, Version: creatorVersion})
	return &Document{
		Log: Log{
			Version: version,
			Creator: creator,
			Entries: []json.RawMessage{},
		},
	}
}

// ParseDocument parses data as a HAR document. It returns ErrNotDocument when
// the JSON is well formed but has no log.entries array.
func ParseDocument(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("parsing HAR document: invalid JSON")
	}
	if !IsDocument(data) {
		return nil, ErrNotDocument
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing HAR document: %w", err)
	}
	if doc.Log.Entries == nil {
		doc.Log.Entries = []json.RawMessage{}
	}
	return &doc, nil
}

// Append adds e after the existing entries.
func (d *Document) Append(e Entry) error {
	line, err := MarshalEntry(e)
	if err != nil {
		return err
	}
	d.AppendRaw(bytes.TrimRight(line, "\n"))
	return nil
}

// AppendRaw adds an already-serialized entry after the existing entries.
func (d *Document) AppendRaw(raw json.RawMessage) {
	d.Log.Entries = append(d.Log.Entries, raw)
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.Log.Entries)
}

// CreatorInfo decodes the creator block. A missing or foreign-shaped creator
// yields the zero Creator.
func (d *Document) CreatorInfo() Creator {
	var c Creator
	if len(d.Log.Creator) > 0 {
		_ = json.Unmarshal(d.Log.Creator, &c)
	}
	return c
}

// Entries decodes every entry into the harlog entry shape.
func (d *Document) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, len(d.Log.Entries))
	for i, raw := range d.Log.Entries {
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decoding entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Marshal renders the document with 2-space indentation and no trailing
// newline.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding HAR document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalEntry renders e as a single JSON line terminated by "\n".
func MarshalEntry(e Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("encoding HAR entry: %w", err)
	}
	return buf.Bytes(), nil
}
