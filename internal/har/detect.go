package har

import (
	"bytes"
	"encoding/json"
)

// IsDocument reports whether data is a JSON object with a "log" object that
// has an "entries" array.
func IsDocument(data []byte) bool {
	var obj map[string]json.RawMessage
	if json.Unmarshal(data, &obj) != nil {
		return false
	}
	logRaw, ok := obj["log"]
	if !ok {
		return false
	}
	var logObj map[string]json.RawMessage
	if json.Unmarshal(logRaw, &logObj) != nil || logObj == nil {
		return false
	}
	entries, ok := logObj["entries"]
	if !ok {
		return false
	}
	return bytes.HasPrefix(bytes.TrimSpace(entries), []byte("["))
}

// IsEntry reports whether data is a JSON object that looks like a single
// entry: it has a request object with a method.
func IsEntry(data []byte) bool {
	var obj struct {
		Request *struct {
			Method *string `json:"method"`
		} `json:"request"`
	}
	if json.Unmarshal(data, &obj) != nil {
		return false
	}
	return obj.Request != nil && obj.Request.Method != nil
}
