package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sadopc/harlog/internal/ui/theme"
)

// row is one line of the list and history tables.
type row struct {
	ID      string
	Started time.Time
	Method  string
	Status  int
	Size    int64
	URL     string
}

func renderRows(w io.Writer, rows []row, s theme.Styles) {
	idWidth := 1
	for _, r := range rows {
		if len(r.ID) > idWidth {
			idWidth = len(r.ID)
		}
	}

	header := fmt.Sprintf("%-*s  %-16s  %-7s  %-6s  %-9s  %s", idWidth, "#", "WHEN", "METHOD", "STATUS", "SIZE", "URL")
	fmt.Fprintln(w, s.Header.Render(header))

	for _, r := range rows {
		status := s.Status(r.Status)
		statusText := strconv.Itoa(r.Status)
		if r.Status == 0 {
			statusText = "---"
		}
		fmt.Fprintf(w, "%s  %s  %s  %s%*s  %-9s  %s\n",
			s.Index.Render(fmt.Sprintf("%-*s", idWidth, r.ID)),
			s.Muted.Render(fmt.Sprintf("%-16s", theme.Ago(r.Started))),
			s.MethodStyle(r.Method).Render(fmt.Sprintf("%-7s", r.Method)),
			status, 6-len(statusText), "",
			theme.Size(r.Size),
			s.URL.Render(r.URL),
		)
	}
}
