// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package timekeep

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

func sampleEntries() []types.Entry {
	return []types.Entry{
		{
			Name:  "Deep work",
			Start: time.Date(2024, 11, 5, 9, 4, 0, 0, time.UTC),
			End:   time.Date(2024, 11, 5, 10, 34, 0, 0, time.UTC),
		},
		{
			Name:  "Email triage",
			Start: time.Date(2024, 11, 5, 10, 40, 0, 0, time.UTC),
			End:   time.Date(2024, 11, 5, 10, 55, 0, 0, time.UTC),
		},
	}
}

func TestDocumentJSONShape(t *testing.T) {
	doc := FromEntries(sampleEntries()[:1])

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"entries":[{"name":"Deep work","startTime":"2024-11-05T09:04:00.000Z","endTime":"2024-11-05T10:34:00.000Z","subEntries":null}]}`
	if string(data) != want {
		t.Errorf("document JSON = %s, want %s", data, want)
	}
}

func TestDocumentJSONShape_Empty(t *testing.T) {
	data, err := json.Marshal(FromEntries(nil))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"entries":[]}` {
		t.Errorf("empty document JSON = %s", data)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := Timestamp(time.Date(2024, 11, 5, 9, 4, 0, 0, time.UTC))
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	var parsed Timestamp
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatal(err)
	}
	if !time.Time(parsed).Equal(time.Time(orig)) {
		t.Errorf("round trip changed timestamp: %v != %v", parsed, orig)
	}

	if err := json.Unmarshal([]byte(`"2024-11-05 09:04"`), &parsed); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteJSON(path, FromEntries(sampleEntries())); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "{\n  \"entries\"") {
		t.Error("output should be two-space indented")
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("output should end with a newline")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Entries) != 2 {
		t.Errorf("got %d entries, want 2", len(doc.Entries))
	}
}

func TestBlock(t *testing.T) {
	block, err := Block(FromEntries(sampleEntries()))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(block, "```timekeep\n") {
		t.Error("block should open a timekeep fence")
	}
	if !strings.HasSuffix(block, "\n```") {
		t.Error("block should close the fence")
	}
	if strings.Count(block, "\n") != 2 {
		t.Error("block JSON should be compact, on a single line")
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleEntries())

	if totals.Entries != 2 {
		t.Errorf("entries = %d, want 2", totals.Entries)
	}
	if want := time.Date(2024, 11, 5, 9, 4, 0, 0, time.UTC); !totals.First.Equal(want) {
		t.Errorf("first = %v, want %v", totals.First, want)
	}
	if want := time.Date(2024, 11, 5, 10, 55, 0, 0, time.UTC); !totals.Last.Equal(want) {
		t.Errorf("last = %v, want %v", totals.Last, want)
	}
	if want := 105 * time.Minute; totals.Total != want {
		t.Errorf("total = %v, want %v", totals.Total, want)
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out_readable.txt")
	if err := WriteSummary(path, sampleEntries(), "2024-11-05"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"Total entries: 2",
		"Start date: 2024-11-05",
		"  1. 2024-11-05 09:04 - 10:34 | Deep work (90 min)",
		"  2. 2024-11-05 10:40 - 10:55 | Email triage (15 min)",
		"Total time: 1h 45m",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("summary missing %q:\n%s", want, content)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0h 0m"},
		{45 * time.Minute, "0h 45m"},
		{125 * time.Minute, "2h 5m"},
		{24 * time.Hour, "24h 0m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
