package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:     "Catppuccin Mocha",
	Surface:  lipgloss.Color("#313244"),
	Text:     lipgloss.Color("#cdd6f4"),
	Subtext:  lipgloss.Color("#a6adc8"),
	Muted:    lipgloss.Color("#585b70"),
	Mauve:    lipgloss.Color("#cba6f7"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),
	Lavender: lipgloss.Color("#b4befe"),
	Syntax:   "catppuccin-mocha",
}

var CatppuccinLatte = Theme{
	Name:     "Catppuccin Latte",
	Surface:  lipgloss.Color("#ccd0da"),
	Text:     lipgloss.Color("#4c4f69"),
	Subtext:  lipgloss.Color("#6c6f85"),
	Muted:    lipgloss.Color("#9ca0b0"),
	Mauve:    lipgloss.Color("#8839ef"),
	Red:      lipgloss.Color("#d20f39"),
	Peach:    lipgloss.Color("#fe640b"),
	Yellow:   lipgloss.Color("#df8e1d"),
	Green:    lipgloss.Color("#40a02b"),
	Teal:     lipgloss.Color("#179299"),
	Blue:     lipgloss.Color("#1e66f5"),
	Lavender: lipgloss.Color("#7287fd"),
	Syntax:   "catppuccin-latte",
}

var Nord = Theme{
	Name:     "Nord",
	Surface:  lipgloss.Color("#3b4252"),
	Text:     lipgloss.Color("#eceff4"),
	Subtext:  lipgloss.Color("#d8dee9"),
	Muted:    lipgloss.Color("#4c566a"),
	Mauve:    lipgloss.Color("#b48ead"),
	Red:      lipgloss.Color("#bf616a"),
	Peach:    lipgloss.Color("#d08770"),
	Yellow:   lipgloss.Color("#ebcb8b"),
	Green:    lipgloss.Color("#a3be8c"),
	Teal:     lipgloss.Color("#8fbcbb"),
	Blue:     lipgloss.Color("#5e81ac"),
	Lavender: lipgloss.Color("#b48ead"),
	Syntax:   "nord",
}

var Dracula = Theme{
	Name:     "Dracula",
	Surface:  lipgloss.Color("#44475a"),
	Text:     lipgloss.Color("#f8f8f2"),
	Subtext:  lipgloss.Color("#bfbfbf"),
	Muted:    lipgloss.Color("#6272a4"),
	Mauve:    lipgloss.Color("#bd93f9"),
	Red:      lipgloss.Color("#ff5555"),
	Peach:    lipgloss.Color("#ffb86c"),
	Yellow:   lipgloss.Color("#f1fa8c"),
	Green:    lipgloss.Color("#50fa7b"),
	Teal:     lipgloss.Color("#8be9fd"),
	Blue:     lipgloss.Color("#6272a4"),
	Lavender: lipgloss.Color("#bd93f9"),
	Syntax:   "dracula",
}

var GruvboxDark = Theme{
	Name:     "Gruvbox Dark",
	Surface:  lipgloss.Color("#3c3836"),
	Text:     lipgloss.Color("#ebdbb2"),
	Subtext:  lipgloss.Color("#d5c4a1"),
	Muted:    lipgloss.Color("#665c54"),
	Mauve:    lipgloss.Color("#d3869b"),
	Red:      lipgloss.Color("#fb4934"),
	Peach:    lipgloss.Color("#fe8019"),
	Yellow:   lipgloss.Color("#fabd2f"),
	Green:    lipgloss.Color("#b8bb26"),
	Teal:     lipgloss.Color("#8ec07c"),
	Blue:     lipgloss.Color("#83a598"),
	Lavender: lipgloss.Color("#d3869b"),
	Syntax:   "gruvbox",
}

var TokyoNight = Theme{
	Name:     "Tokyo Night",
	Surface:  lipgloss.Color("#292e42"),
	Text:     lipgloss.Color("#c0caf5"),
	Subtext:  lipgloss.Color("#a9b1d6"),
	Muted:    lipgloss.Color("#565f89"),
	Mauve:    lipgloss.Color("#bb9af7"),
	Red:      lipgloss.Color("#f7768e"),
	Peach:    lipgloss.Color("#ff9e64"),
	Yellow:   lipgloss.Color("#e0af68"),
	Green:    lipgloss.Color("#9ece6a"),
	Teal:     lipgloss.Color("#73daca"),
	Blue:     lipgloss.Color("#7aa2f7"),
	Lavender: lipgloss.Color("#b4f9f8"),
	Syntax:   "tokyonight-night",
}

// builtins lists the themes shipped with harlog, in menu order.
var builtins = []Theme{CatppuccinMocha, CatppuccinLatte, Nord, Dracula, GruvboxDark, TokyoNight}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Get finds a built-in theme. Names match case-insensitively, with spaces
// and dashes interchangeable ("tokyo night" finds "Tokyo Night").
func Get(name string) (Theme, bool) {
	key := normalizeKey(name)
	for _, t := range builtins {
		if normalizeKey(t.Name) == key {
			return t, true
		}
	}
	return Theme{}, false
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, t := range builtins {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Resolve picks the theme configured as name: a built-in first, then a
// custom theme from ~/.config/harlog/themes, else the default.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}
	if home, err := os.UserHomeDir(); err == nil {
		customs := LoadCustomThemes(filepath.Join(home, ".config", "harlog", "themes"))
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}
	return Default()
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
