package diff

import (
	"strings"
	"testing"
)

func ops(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		switch l.Op {
		case Same:
			b.WriteByte('=')
		case Added:
			b.WriteByte('+')
		case Removed:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"identical", "a\nb\nc", "a\nb\nc", "==="},
		{"empty", "", "", ""},
		{"all new", "", "a\nb", "++"},
		{"all removed", "a\nb", "", "--"},
		{"insert middle", "a\nc", "a\nb\nc", "=+="},
		{"remove middle", "a\nb\nc", "a\nc", "=-="},
		{"replace", "a\nb\nc", "a\nx\nc", "=-+="},
		{"trailing newline ignored", "a\nb\n", "a\nb", "=="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ops(Lines(tt.a, tt.b)); got != tt.want {
				t.Errorf("ops = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinesRebuildsBothSides(t *testing.T) {
	a := "line1\nline2\nline3\nline4\nline5"
	b := "line1\nline2modified\nline3\nline4.5\nline5\nline6"

	var oldSide, newSide []string
	for _, l := range Lines(a, b) {
		if l.Op != Added {
			oldSide = append(oldSide, l.Text)
		}
		if l.Op != Removed {
			newSide = append(newSide, l.Text)
		}
	}
	if got := strings.Join(oldSide, "\n"); got != a {
		t.Errorf("old side = %q", got)
	}
	if got := strings.Join(newSide, "\n"); got != b {
		t.Errorf("new side = %q", got)
	}
}

func TestLineNumbers(t *testing.T) {
	for _, l := range Lines("a\nb", "a\nc") {
		switch l.Op {
		case Same:
			if l.OldLine != 1 || l.NewLine != 1 {
				t.Errorf("same line numbers = %d/%d", l.OldLine, l.NewLine)
			}
		case Removed:
			if l.OldLine != 2 || l.NewLine != -1 {
				t.Errorf("removed line numbers = %d/%d", l.OldLine, l.NewLine)
			}
		case Added:
			if l.OldLine != -1 || l.NewLine != 2 {
				t.Errorf("added line numbers = %d/%d", l.OldLine, l.NewLine)
			}
		}
	}
}

func TestEntriesIgnoresKeyOrder(t *testing.T) {
	a := []byte(`{"request":{"method":"GET","url":"http://x"},"response":{"status":200}}`)
	b := []byte(`{"response":{"status":200},"request":{"url":"http://x","method":"GET"}}`)
	if lines := Entries(a, b); Changed(lines) {
		t.Errorf("expected no change, got %q", ops(lines))
	}

	c := []byte(`{"request":{"method":"GET","url":"http://x"},"response":{"status":500}}`)
	lines := Entries(a, c)
	if !Changed(lines) {
		t.Fatal("expected a change")
	}
	var removed, added string
	for _, l := range lines {
		switch l.Op {
		case Removed:
			removed += l.Text
		case Added:
			added += l.Text
		}
	}
	if !strings.Contains(removed, "200") || !strings.Contains(added, "500") {
		t.Errorf("removed %q, added %q", removed, added)
	}
}

func TestHunks(t *testing.T) {
	a := "1\n2\n3\n4\n5\n6\n7\n8\n9"
	b := "1\nY\n3\n4\n5\n6\n7\nX\n9"

	got := Hunks(Lines(a, b), 1)
	var texts []string
	for _, l := range got {
		texts = append(texts, l.Text)
	}
	if strings.Join(texts, ",") != "1,2,Y,3,...,7,8,X,9" {
		t.Errorf("hunks = %v", texts)
	}

	if len(Hunks(Lines(a, a), 3)) != 0 {
		t.Error("identical input should produce no hunks")
	}
}
