package main

import (
	"strings"
	"testing"
)

func TestCompletionScripts(t *testing.T) {
	commands := []string{"list", "show", "convert", "curl", "diff", "validate", "history", "completion", "version", "help"}

	tests := []struct {
		shell string
		must  []string
	}{
		{"bash", []string{"_harlog", "complete -F _harlog harlog", "--filter", "--copy", "--creator-name", "--fuzzy"}},
		{"zsh", []string{"#compdef harlog", "_arguments", "_describe", "--output", "(index list search clear)"}},
		{"fish", []string{"complete -c harlog -f", "__fish_use_subcommand", "-l index", "-l db"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			script, err := completionScript(tt.shell)
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range append(tt.must, commands...) {
				if !strings.Contains(script, want) {
					t.Errorf("%s completion missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestCompletionUnsupportedShell(t *testing.T) {
	if _, err := completionScript("powershell"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
