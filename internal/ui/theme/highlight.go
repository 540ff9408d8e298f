package theme

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/tidwall/pretty"
)

// DetectLexer maps Content-Type to a chroma lexer name.
func DetectLexer(contentType string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return "json"
	case strings.Contains(ct, "html"):
		return "html"
	case strings.Contains(ct, "xml"):
		return "xml"
	case strings.HasPrefix(ct, "text/css"):
		return "css"
	case strings.Contains(ct, "javascript"):
		return "javascript"
	default:
		return "text"
	}
}

// PrettyJSON indents JSON text; anything that is not JSON is returned as is.
func PrettyJSON(src []byte) []byte {
	trimmed := bytes.TrimSpace(src)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return src
	}
	return bytes.TrimRight(pretty.Pretty(trimmed), "\n")
}

// Body formats a body for the terminal: JSON is pretty-printed, then the
// text is highlighted with the named chroma style. An empty style skips
// highlighting.
func Body(source, contentType, style string) string {
	lexerName := DetectLexer(contentType)
	if lexerName == "json" {
		source = string(PrettyJSON([]byte(source)))
	}
	if style == "" {
		return source
	}
	return Highlight(source, lexerName, style)
}

// Highlight applies chroma syntax highlighting to source code.
func Highlight(source, lexerName, styleName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}
