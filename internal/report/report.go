// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report recovers (name, start, end) entries from Toggl Track
// detailed-report exports, both PDF text and CSV.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

var (
	// sectionRe marks the daily section header, "All time entries from X
	// to Y". PDF extraction often drops the spaces, so every gap is
	// optional.
	sectionRe = regexp.MustCompile(`All\s*time\s*entries\s*from.*?to`)

	// rowRe matches one entry line: description, a duration in any of the
	// formats Toggl prints (HHMMSS, H:MM:SS, M:SS min, N min, N sec), then
	// 4-digit start and end clock times at the end of the line.
	rowRe = regexp.MustCompile(`^(.+?)\s+(?:\d{6}|\d+:\d+:\d+|\d+:\d+\s+min|\d+\s+min|\d+\s+sec)\s+(\d{4})\s+(\d{4})\s*$`)

	// fileDateRe matches the date fragment in Toggl's export filenames,
	// e.g. Toggl_time_entries_from_2024_11_05_to_2024_11_12.pdf.
	fileDateRe = regexp.MustCompile(`from_(\d{4})_(\d{2})_(\d{2})`)
)

// ParsePDFText recovers entries from the plain text of a detailed-report PDF.
// The PDF prints clock times without dates, so startDate anchors the first
// daily section and each later section advances the date by one day. Lines
// that do not look like entry rows are skipped. Diagnostics go to debug,
// which may be nil. Returns an error when the text holds no data sections.
func ParsePDFText(text string, startDate time.Time, debug io.Writer) ([]types.Entry, error) {
	if debug == nil {
		debug = io.Discard
	}

	day := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	var entries []types.Entry
	parsed := 0

	for i, sec := range sectionRe.Split(text, -1) {
		if strings.TrimSpace(sec) == "" {
			continue
		}
		// Preamble and summary pages carry no column header.
		if !strings.Contains(sec, "DESCRIPTION") && !strings.Contains(sec, "TIME") {
			fmt.Fprintf(debug, "section %d: no data header, skipping\n", i)
			continue
		}

		secEntries := parseSection(sec, day, debug)
		if len(secEntries) == 0 {
			continue
		}
		secEntries = dedupeSection(secEntries, debug)
		fmt.Fprintf(debug, "section %d: %d entries starting %s\n", i, len(secEntries), day.Format("2006-01-02"))

		entries = append(entries, secEntries...)
		parsed++
		day = day.AddDate(0, 0, 1)
	}

	if parsed == 0 {
		return nil, fmt.Errorf("no time entry sections found in report text")
	}
	return entries, nil
}

// parseSection extracts entry rows from one daily section. The date may
// advance mid-section: a start that precedes the previous entry's end means
// the clock wrapped past midnight.
func parseSection(sec string, day time.Time, debug io.Writer) []types.Entry {
	var out []types.Entry
	var prevEnd time.Time

	for _, line := range strings.Split(sec, "\n") {
		m := rowRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}

		name := strings.TrimSpace(m[1])
		start, ok := clockTime(day, m[2])
		if !ok {
			continue
		}
		end, ok := clockTime(day, m[3])
		if !ok {
			continue
		}

		if !prevEnd.IsZero() && start.Before(prevEnd) {
			day = day.AddDate(0, 0, 1)
			start = start.AddDate(0, 0, 1)
			end = end.AddDate(0, 0, 1)
			fmt.Fprintf(debug, "day rollover before %q: now %s\n", name, day.Format("2006-01-02"))
		}

		// Overnight entry: the end clock time falls on the next day.
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}
		// Sub-minute entry: start and end share the same minute.
		if end.Equal(start) {
			end = end.Add(time.Minute)
			fmt.Fprintf(debug, "sub-minute entry: %s\n", name)
		}

		prevEnd = end
		out = append(out, types.Entry{Name: name, Start: start, End: end})
	}
	return out
}

// clockTime places a 4-digit HHMM clock string on the given day. Reports
// false for impossible clock values so malformed rows are dropped.
func clockTime(day time.Time, hhmm string) (time.Time, bool) {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[2:])
	if h > 23 || m > 59 {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC), true
}

// dedupeSection drops exact (name, start, end) repeats, keeping the first.
// Toggl PDF layouts repeat an entry when it straddles a page break.
func dedupeSection(entries []types.Entry, debug io.Writer) []types.Entry {
	seen := make(map[string]bool, len(entries))
	var out []types.Entry
	for _, e := range entries {
		key := e.Name + "|" + e.Start.Format(time.RFC3339) + "|" + e.End.Format(time.RFC3339)
		if seen[key] {
			fmt.Fprintf(debug, "duplicate dropped: %s %s-%s\n",
				e.Name, e.Start.Format("15:04"), e.End.Format("15:04"))
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// InferStartDate recovers the report start date from the from_YYYY_MM_DD
// fragment Toggl puts in export filenames.
func InferStartDate(path string) (time.Time, bool) {
	m := fileDateRe.FindStringSubmatch(path)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
