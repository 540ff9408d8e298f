// Package diff compares two recorded entries line by line.
package diff

import (
	"strings"

	"github.com/tidwall/pretty"
)

// Op says which side of the comparison a line belongs to.
type Op int

const (
	Same Op = iota
	Added
	Removed
)

// Line is one line of a diff. OldLine and NewLine are 1-based and -1 on the
// side the line is absent from.
type Line struct {
	Op      Op
	Text    string
	OldLine int
	NewLine int
}

// Entries pretty-prints two JSON entries with sorted keys and diffs them, so
// field order in the source files does not show up as a change.
func Entries(a, b []byte) []Line {
	opts := *pretty.DefaultOptions
	opts.SortKeys = true
	return Lines(string(pretty.PrettyOptions(a, &opts)), string(pretty.PrettyOptions(b, &opts)))
}

// Lines computes a shortest line diff (Myers) from a to b.
func Lines(a, b string) []Line {
	x, y := split(a), split(b)
	out := make([]Line, 0, len(x)+len(y))
	for _, s := range script(x, y) {
		switch {
		case s.i < 0:
			out = append(out, Line{Op: Added, Text: y[s.j], OldLine: -1, NewLine: s.j + 1})
		case s.j < 0:
			out = append(out, Line{Op: Removed, Text: x[s.i], OldLine: s.i + 1, NewLine: -1})
		default:
			out = append(out, Line{Op: Same, Text: x[s.i], OldLine: s.i + 1, NewLine: s.j + 1})
		}
	}
	return out
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Same {
			return true
		}
	}
	return false
}

// Hunks drops unchanged lines further than context lines from a change. A
// separator line (Text "...", both line numbers 0) marks each gap.
func Hunks(lines []Line, context int) []Line {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Same {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var out []Line
	gap := false
	for i, l := range lines {
		if !keep[i] {
			gap = true
			continue
		}
		if gap && len(out) > 0 {
			out = append(out, Line{Op: Same, Text: "..."})
		}
		gap = false
		out = append(out, l)
	}
	return out
}

func split(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// step pairs indexes into a and b; -1 marks the side a line is missing from.
type step struct{ i, j int }

func script(a, b []string) []step {
	n, m := len(a), len(b)
	offset := n + m
	v := make([]int, 2*offset+2)
	var trace [][]int

search:
	for d := 0; d <= n+m; d++ {
		trace = append(trace, append([]int(nil), v...))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				break search
			}
		}
	}

	var rev []step
	x, y := n, m
	for d := len(trace) - 1; d >= 0 && (x > 0 || y > 0); d-- {
		v := trace[d]
		k := x - y
		var pk int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		px := v[offset+pk]
		py := px - pk
		for x > px && y > py {
			x, y = x-1, y-1
			rev = append(rev, step{x, y})
		}
		if d == 0 {
			break
		}
		if x == px {
			y--
			rev = append(rev, step{-1, y})
		} else {
			x--
			rev = append(rev, step{x, -1})
		}
		x, y = px, py
	}

	out := make([]step, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}
	return out
}
