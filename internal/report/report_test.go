// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nov5 = time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)

// sampleReport mimics text recovered from a two-day detailed report. PDF
// extraction drops the spaces in the section marker.
const sampleReport = `Toggl Track detailed report
Alltimeentriesfrom 11/05/2024 to 11/06/2024
DESCRIPTION DURATION TIME
Deep work 013000 0904 1034
Email triage 15 min 1040 1055
Standup 0:15:00 1100 1115
Alltimeentriesfrom 11/06/2024 to 11/07/2024
DESCRIPTION DURATION TIME
Morning review 10 min 0900 0910
`

func TestParsePDFText(t *testing.T) {
	entries, err := ParsePDFText(sampleReport, nov5, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "Deep work", entries[0].Name)
	assert.Equal(t, time.Date(2024, 11, 5, 9, 4, 0, 0, time.UTC), entries[0].Start)
	assert.Equal(t, time.Date(2024, 11, 5, 10, 34, 0, 0, time.UTC), entries[0].End)

	assert.Equal(t, "Email triage", entries[1].Name)
	assert.Equal(t, "Standup", entries[2].Name)

	// Second section lands on the next day.
	assert.Equal(t, "Morning review", entries[3].Name)
	assert.Equal(t, time.Date(2024, 11, 6, 9, 0, 0, 0, time.UTC), entries[3].Start)

	for _, e := range entries {
		assert.True(t, e.End.After(e.Start), "entry %q end must be after start", e.Name)
	}
}

func TestParsePDFText_Overnight(t *testing.T) {
	text := `Alltimeentriesfrom 11/05/2024 to 11/06/2024
DESCRIPTION DURATION TIME
Evening shift 020000 2300 0100
`
	entries, err := ParsePDFText(text, nov5, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, time.Date(2024, 11, 5, 23, 0, 0, 0, time.UTC), entries[0].Start)
	assert.Equal(t, time.Date(2024, 11, 6, 1, 0, 0, 0, time.UTC), entries[0].End)
}

func TestParsePDFText_DayRollover(t *testing.T) {
	// The second entry starts before the first one ends, so the clock
	// wrapped past midnight and the date must advance.
	text := `Alltimeentriesfrom 11/05/2024 to 11/07/2024
DESCRIPTION DURATION TIME
Evening shift 020000 2300 0100
Night cap 30 min 0110 0140
`
	entries, err := ParsePDFText(text, nov5, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, time.Date(2024, 11, 6, 1, 10, 0, 0, time.UTC), entries[1].Start)
	assert.Equal(t, time.Date(2024, 11, 6, 1, 40, 0, 0, time.UTC), entries[1].End)
	assert.True(t, entries[1].Start.After(entries[0].End) || entries[1].Start.Equal(entries[0].End))
}

func TestParsePDFText_DedupePerSection(t *testing.T) {
	text := `Alltimeentriesfrom 11/05/2024 to 11/06/2024
DESCRIPTION DURATION TIME
Task A 10 min 0900 0910
Task A 10 min 0900 0910
Task B 10 min 0920 0930
`
	var debug bytes.Buffer
	entries, err := ParsePDFText(text, nov5, &debug)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Task A", entries[0].Name)
	assert.Equal(t, "Task B", entries[1].Name)
	assert.Contains(t, debug.String(), "duplicate dropped")
}

func TestParsePDFText_SubMinuteEntry(t *testing.T) {
	text := `Alltimeentriesfrom 11/05/2024 to 11/06/2024
DESCRIPTION DURATION TIME
Blip 30 sec 0904 0904
`
	entries, err := ParsePDFText(text, nov5, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, time.Minute, entries[0].Duration())
}

func TestParsePDFText_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no section marker", text: "just some unrelated text\n"},
		{name: "section without data header", text: "Alltimeentriesfrom x to y\nsummary page only\n"},
		{name: "header but no rows", text: "Alltimeentriesfrom x to y\nDESCRIPTION DURATION\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePDFText(tt.text, nov5, nil)
			assert.Error(t, err)
		})
	}
}

func TestParsePDFText_SkipsMalformedLines(t *testing.T) {
	text := `Alltimeentriesfrom 11/05/2024 to 11/06/2024
DESCRIPTION DURATION TIME
Valid task 10 min 0900 0910
Broken row 10 min 9999 0910
Another valid 5 min 0915 0920
`
	entries, err := ParsePDFText(text, nov5, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Valid task", entries[0].Name)
	assert.Equal(t, "Another valid", entries[1].Name)
}

func TestInferStartDate(t *testing.T) {
	tests := []struct {
		name string
		path string
		want time.Time
		ok   bool
	}{
		{
			name: "toggl export filename",
			path: "Toggl_time_entries_from_2024_11_05_to_2024_11_12.pdf",
			want: nov5,
			ok:   true,
		},
		{
			name: "full path",
			path: "/exports/Toggl_time_entries_from_2025_01_02_to_2025_01_09.pdf",
			want: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{name: "no date fragment", path: "report.pdf"},
		{name: "impossible date", path: "from_2024_13_45.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferStartDate(tt.path)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
