// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

// Column headers in a Toggl detailed CSV export. Matched case-insensitively;
// older exports vary the casing.
const (
	colDescription = "description"
	colProject     = "project"
	colStartDate   = "start date"
	colStartTime   = "start time"
	colEndDate     = "end date"
	colEndTime     = "end time"
)

// ParseCSV recovers entries from a Toggl detailed CSV export. Unlike the
// PDF path, CSV rows carry full dates, so no day reconstruction is needed.
// Rows without a usable name or with unparseable timestamps are skipped
// silently; duplicate (name, start, end) rows are dropped once per file.
// An error is returned when the header lacks the date/time columns.
func ParseCSV(r io.Reader) ([]types.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colStartDate, colStartTime, colEndDate, colEndTime} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV header missing %q column", required)
		}
	}

	seen := make(map[string]bool)
	var entries []types.Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue // malformed row
		}

		name := field(rec, cols, colDescription)
		if name == "" {
			name = field(rec, cols, colProject)
		}
		if name == "" {
			continue
		}

		start, err := parseStamp(field(rec, cols, colStartDate), field(rec, cols, colStartTime))
		if err != nil {
			continue
		}
		end, err := parseStamp(field(rec, cols, colEndDate), field(rec, cols, colEndTime))
		if err != nil {
			continue
		}
		if end.Equal(start) {
			end = end.Add(time.Minute)
		}
		if !end.After(start) {
			continue
		}

		key := name + "|" + start.Format(time.RFC3339) + "|" + end.Format(time.RFC3339)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, types.Entry{Name: name, Start: start, End: end})
	}
	return entries, nil
}

// field returns the named column's trimmed value, or "" when the row is
// short or the column is absent.
func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// stampLayouts are the date+time layouts Toggl CSV exports use.
var stampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseStamp combines separate date and clock columns into a UTC time.
func parseStamp(date, clock string) (time.Time, error) {
	s := date + " " + clock
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
