// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) RunPiped(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec executor = osExecutor{}

// PdftotextExtractor shells out to the poppler pdftotext binary. Its layout
// mode keeps the duration and time columns on one line, which suits reports
// where the in-process reader scrambles column order.
type PdftotextExtractor struct {
	exec executor
}

// NewPdftotextExtractor verifies that pdftotext is on PATH before returning.
func NewPdftotextExtractor() (*PdftotextExtractor, error) {
	return newPdftotextExtractor(defaultExec)
}

func newPdftotextExtractor(e executor) (*PdftotextExtractor, error) {
	if _, err := e.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextExtractor{exec: e}, nil
}

// Extract runs pdftotext in layout mode and returns its stdout.
func (p *PdftotextExtractor) Extract(path string) (string, error) {
	var out bytes.Buffer
	// Trailing "-" sends the text to stdout.
	if err := p.exec.RunPiped(binPdftotext, []string{"-layout", path, "-"}, &out); err != nil {
		return "", fmt.Errorf("running %s on %s: %w", binPdftotext, path, err)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%s produced no text for %s", binPdftotext, path)
	}
	return out.String(), nil
}
