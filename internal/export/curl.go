// Package export turns recorded entries into commands that replay them.
package export

import (
	"fmt"
	"strings"

	"github.com/sadopc/harlog/internal/har"
)

// headers curl computes itself; replaying the recorded value would be wrong
// once the body or connection differs.
var skipHeaders = map[string]bool{
	"content-length":    true,
	"host":              true,
	"connection":        true,
	"transfer-encoding": true,
}

// AsCurl converts a recorded request to a curl command string. Base64
// bodies are decoded through a pipe so binary payloads survive the shell.
func AsCurl(e har.Entry) string {
	req := e.Request
	var parts []string
	parts = append(parts, "curl")

	// Method
	if req.Method != "GET" && req.Method != "" {
		parts = append(parts, "-X", req.Method)
	}

	// Headers
	for _, h := range req.Headers {
		if skipHeaders[strings.ToLower(h.Name)] {
			continue
		}
		parts = append(parts, "-H", quote(fmt.Sprintf("%s: %s", h.Name, h.Value)))
	}

	// Body
	var prefix string
	if pd := req.PostData; pd != nil && pd.Text != "" {
		if pd.Encoding == har.EncodingBase64 {
			prefix = fmt.Sprintf("printf '%%s' %s | base64 -d | ", quote(pd.Text))
			parts = append(parts, "--data-binary", "@-")
		} else {
			parts = append(parts, "--data-raw", quote(pd.Text))
		}
	}

	parts = append(parts, quote(req.URL))

	return prefix + strings.Join(parts, " ")
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
