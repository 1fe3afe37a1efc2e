// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package timekeep renders parsed entries in the formats the Obsidian
// Timekeep plugin consumes: a JSON entry list and a fenced markdown block.
package timekeep

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

// stampLayout is the timestamp format Timekeep stores: UTC with a fixed
// millisecond field and Z suffix.
const stampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp marshals as the fixed-format UTC string Timekeep expects.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(stampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(stampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timekeep timestamp %q: %w", s, err)
	}
	*t = Timestamp(parsed)
	return nil
}

// Entry is one tracked interval in Timekeep's on-disk shape. SubEntries is
// always null here: the plugin uses it for nested timers, which Toggl
// reports have no equivalent of.
type Entry struct {
	Name       string    `json:"name"`
	StartTime  Timestamp `json:"startTime"`
	EndTime    Timestamp `json:"endTime"`
	SubEntries []Entry   `json:"subEntries"`
}

// Document wraps the ordered entry list the way the plugin stores it.
type Document struct {
	Entries []Entry `json:"entries"`
}

// FromEntries converts parsed report entries into the Timekeep document
// shape, preserving order.
func FromEntries(entries []types.Entry) Document {
	doc := Document{Entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, Entry{
			Name:      e.Name,
			StartTime: Timestamp(e.Start),
			EndTime:   Timestamp(e.End),
		})
	}
	return doc
}

// WriteJSON writes the document as two-space indented JSON.
func WriteJSON(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling entries: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Block renders the compact fenced code block pasted into a note.
func Block(doc Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling entries: %w", err)
	}
	return "```timekeep\n" + string(data) + "\n```", nil
}
