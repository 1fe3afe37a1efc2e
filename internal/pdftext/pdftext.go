// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts plain text from Toggl report PDFs with pluggable
// backends.
package pdftext

import (
	"fmt"
	"strings"
)

// Extractor reads a PDF file and returns its plain text. Different backends
// (in-process reader, the poppler pdftotext binary) implement this interface.
type Extractor interface {
	// Extract reads the PDF at path and returns its text, pages separated
	// by newlines.
	Extract(path string) (string, error)
}

// Select returns the extractor registered under name. The empty string
// selects the native backend. The pdftotext backend fails here, before any
// file is touched, when the binary is not on PATH.
func Select(name string) (Extractor, error) {
	switch name {
	case "", "native":
		return &NativeExtractor{}, nil
	case "pdftotext":
		return NewPdftotextExtractor()
	default:
		return nil, fmt.Errorf("unknown PDF backend %q: use native or pdftotext", name)
	}
}

// Clean strips the NUL bytes PDF text extraction sometimes leaves behind.
func Clean(text string) string {
	return strings.ReplaceAll(text, "\x00", "")
}
