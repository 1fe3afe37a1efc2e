// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package timekeep

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

// Totals aggregates a converted report for the summary output and the run
// manifest.
type Totals struct {
	Entries int
	First   time.Time
	Last    time.Time
	Total   time.Duration
}

// ComputeTotals walks the entry list once and returns its aggregates.
func ComputeTotals(entries []types.Entry) Totals {
	t := Totals{Entries: len(entries)}
	for i, e := range entries {
		if i == 0 || e.Start.Before(t.First) {
			t.First = e.Start
		}
		if e.End.After(t.Last) {
			t.Last = e.End
		}
		t.Total += e.Duration()
	}
	return t
}

// WriteSummary writes the human-readable entry list: a header with counts,
// one numbered line per entry, and the total tracked time.
func WriteSummary(path string, entries []types.Entry, startDate string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total entries: %d\n", len(entries))
	if startDate != "" {
		fmt.Fprintf(&b, "Start date: %s\n", startDate)
	}
	b.WriteString("\n")

	for i, e := range entries {
		fmt.Fprintf(&b, "%3d. %s - %s | %s (%.0f min)\n",
			i+1,
			e.Start.Format("2006-01-02 15:04"),
			e.End.Format("15:04"),
			e.Name,
			e.Duration().Minutes(),
		)
	}

	totals := ComputeTotals(entries)
	fmt.Fprintf(&b, "\nTotal time: %s\n", FormatDuration(totals.Total))

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// FormatDuration renders a total as whole hours and minutes, e.g. "3h 25m".
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
