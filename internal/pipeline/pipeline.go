// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the extract-parse-emit conversion for each input
// file and keeps batch runs going past per-file failures.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aaqil101/toggl-to-timekeep/internal/pdftext"
	"github.com/Aaqil101/toggl-to-timekeep/internal/report"
	"github.com/Aaqil101/toggl-to-timekeep/internal/timekeep"
	"github.com/Aaqil101/toggl-to-timekeep/pkg/types"
)

// Options controls a conversion run.
type Options struct {
	// StartDate anchors PDF reports, which print clock times without
	// dates. Zero means infer it from the export filename.
	StartDate time.Time

	// Output overrides the JSON output path. Only valid for a single
	// input file; companion files derive from its stem.
	Output string

	// Block also writes the fenced timekeep markdown block next to the
	// JSON output.
	Block bool

	// Debug receives parser diagnostics. Nil discards them.
	Debug io.Writer
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any inputs failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run converts each input, expanding directories into the CSV exports they
// contain. Missing inputs and empty directories abort with an error; a file
// that fails to convert is reported to w and counted, and the batch keeps
// going.
func Run(ex pdftext.Extractor, inputs []string, opts Options, w io.Writer) (BatchResult, error) {
	var paths []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return BatchResult{}, fmt.Errorf("input %s: %w", in, err)
		}
		if !info.IsDir() {
			paths = append(paths, in)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(in, "*.csv"))
		if err != nil {
			return BatchResult{}, fmt.Errorf("scanning %s: %w", in, err)
		}
		if len(matches) == 0 {
			return BatchResult{}, fmt.Errorf("no CSV exports in directory %s", in)
		}
		paths = append(paths, matches...)
	}

	if opts.Output != "" && len(paths) > 1 {
		return BatchResult{}, fmt.Errorf("explicit output path requires a single input, got %d", len(paths))
	}

	var result BatchResult
	for _, p := range paths {
		if err := ConvertFile(ex, p, opts, w); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(p), err)
			result.Failed++
			continue
		}
		result.Converted++
	}

	if len(paths) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
			result.Converted, result.Failed, result.Total())
	}
	return result, nil
}

// ConvertFile converts a single report file, dispatching on extension, and
// writes the JSON entry list, readable summary, optional timekeep block,
// and YAML run manifest next to the input (or at opts.Output).
func ConvertFile(ex pdftext.Extractor, path string, opts Options, w io.Writer) error {
	debug := opts.Debug
	if debug == nil {
		debug = io.Discard
	}

	var entries []types.Entry
	var startDate time.Time

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		start := opts.StartDate
		if start.IsZero() {
			inferred, ok := report.InferStartDate(path)
			if !ok {
				return fmt.Errorf("no start date for %s: pass --start-date or keep Toggl's from_YYYY_MM_DD filename", filepath.Base(path))
			}
			start = inferred
		}
		startDate = start

		text, err := ex.Extract(path)
		if err != nil {
			return err
		}
		text = pdftext.Clean(text)
		fmt.Fprintf(debug, "extracted %d characters from %s\n", len(text), filepath.Base(path))

		entries, err = report.ParsePDFText(text, start, debug)
		if err != nil {
			return err
		}
	case ".csv":
		var err error
		entries, err = parseCSVFile(path)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			startDate = entries[0].Start.Truncate(24 * time.Hour)
		}
	default:
		return fmt.Errorf("unsupported input %s: expected a .pdf or .csv report", filepath.Base(path))
	}

	stem := strings.TrimSuffix(path, filepath.Ext(path))
	jsonPath := stem + ".json"
	if opts.Output != "" {
		jsonPath = opts.Output
		stem = strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath))
	}

	var startStr string
	if !startDate.IsZero() {
		startStr = startDate.Format("2006-01-02")
	}

	doc := timekeep.FromEntries(entries)
	if err := timekeep.WriteJSON(jsonPath, doc); err != nil {
		return err
	}
	if err := timekeep.WriteSummary(stem+"_readable.txt", entries, startStr); err != nil {
		return err
	}
	if opts.Block {
		block, err := timekeep.Block(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(stem+".md", []byte(block+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing block file: %w", err)
		}
	}
	if err := writeManifest(stem+".yaml", path, startStr, entries); err != nil {
		return err
	}

	totals := timekeep.ComputeTotals(entries)
	fmt.Fprintf(w, "converted: %s (%d entries, %s)\n",
		filepath.Base(path), totals.Entries, timekeep.FormatDuration(totals.Total))
	return nil
}

// parseCSVFile opens and parses one CSV export.
func parseCSVFile(path string) ([]types.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := report.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}
