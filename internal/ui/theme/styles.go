package theme

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	theme   Theme
	noColor bool

	Title   lipgloss.Style
	Header  lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	URL     lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Index   lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		theme:   t,
		Title:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(t.Subtext).Bold(true).Underline(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Error:   lipgloss.NewStyle().Foreground(t.Red),
		Success: lipgloss.NewStyle().Foreground(t.Green),
		Warning: lipgloss.NewStyle().Foreground(t.Yellow),
		URL:     lipgloss.NewStyle().Foreground(t.Blue),
		Key:     lipgloss.NewStyle().Foreground(t.Mauve),
		Value:   lipgloss.NewStyle().Foreground(t.Text),
		Index:   lipgloss.NewStyle().Foreground(t.Subtext),
	}
}

// PlainStyles renders everything unstyled, for --no-color and pipes.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		noColor: true,
		Title:   plain, Header: plain, Normal: plain, Muted: plain,
		Error: plain, Success: plain, Warning: plain, URL: plain,
		Key: plain, Value: plain, Index: plain,
	}
}

// NoColor reports whether the styles are plain.
func (s Styles) NoColor() bool {
	return s.noColor
}

// Syntax returns the chroma style name for bodies, "" when plain.
func (s Styles) Syntax() string {
	if s.noColor {
		return ""
	}
	return s.theme.Syntax
}

// MethodStyle returns the style for an HTTP method.
func (s Styles) MethodStyle(method string) lipgloss.Style {
	if s.noColor {
		return s.Normal
	}
	return lipgloss.NewStyle().Foreground(s.theme.MethodColor(method)).Bold(true)
}

// Status renders a status code in its class colour. 0 is shown as "---".
func (s Styles) Status(code int) string {
	text := strconv.Itoa(code)
	if code == 0 {
		text = "---"
	}
	if s.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(s.theme.StatusColor(code)).Bold(true).Render(text)
}
