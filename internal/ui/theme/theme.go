// Package theme holds the colours, styles and syntax highlighting used by
// the harlog CLI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the CLI output.
type Theme struct {
	Name string

	Surface lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	// Syntax names the chroma style used for bodies.
	Syntax string
}

// MethodColor returns the color for an HTTP method.
func (t Theme) MethodColor(method string) lipgloss.Color {
	switch method {
	case "GET":
		return t.Green
	case "POST":
		return t.Yellow
	case "PUT":
		return t.Blue
	case "PATCH":
		return t.Peach
	case "DELETE":
		return t.Red
	case "HEAD":
		return t.Teal
	case "OPTIONS":
		return t.Lavender
	default:
		return t.Text
	}
}

// StatusColor returns the color for an HTTP status code. Status 0 marks an
// entry recorded without a response.
func (t Theme) StatusColor(code int) lipgloss.Color {
	switch {
	case code >= 200 && code < 300:
		return t.Green
	case code >= 300 && code < 400:
		return t.Blue
	case code >= 400 && code < 500:
		return t.Yellow
	case code >= 500:
		return t.Red
	case code == 0:
		return t.Muted
	default:
		return t.Text
	}
}
