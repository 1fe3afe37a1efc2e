// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Aaqil101/toggl-to-timekeep/internal/timekeep"
	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

// Manifest records provenance for one conversion run. It is written as a
// YAML sidecar next to the JSON output, so a vault of converted reports
// keeps a record of where each entry list came from.
type Manifest struct {
	Source       string    `yaml:"source"`
	StartDate    string    `yaml:"start_date,omitempty"`
	Entries      int       `yaml:"entries"`
	TotalMinutes int       `yaml:"total_minutes"`
	GeneratedAt  time.Time `yaml:"generated_at"`
}

// writeManifest saves the run manifest for a converted report.
func writeManifest(path, source, startDate string, entries []types.Entry) error {
	totals := timekeep.ComputeTotals(entries)
	m := Manifest{
		Source:       source,
		StartDate:    startDate,
		Entries:      totals.Entries,
		TotalMinutes: int(totals.Total.Minutes()),
		GeneratedAt:  time.Now().UTC(),
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a previously written run manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
