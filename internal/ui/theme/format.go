package theme

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Size renders a byte count the way the list view shows it ("1.2 kB").
// Negative sizes mean unknown.
func Size(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}

// Ago renders t relative to now ("3 minutes ago").
func Ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
