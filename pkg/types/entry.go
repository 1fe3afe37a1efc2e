// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the toggl-to-timekeep
// pipeline.
package types

import "time"

// Entry is a single tracked interval recovered from a Toggl export.
// Times are UTC; End is always strictly after Start.
type Entry struct {
	// Name is the task description as it appears in the report.
	Name string `json:"name" yaml:"name"`

	// Start is when tracking began.
	Start time.Time `json:"start" yaml:"start"`

	// End is when tracking stopped.
	End time.Time `json:"end" yaml:"end"`
}

// Duration returns the tracked length of the entry.
func (e Entry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
