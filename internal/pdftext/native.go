// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor reads PDF text in-process with the ledongthuc/pdf reader.
// No external binaries required, which makes it the default backend.
type NativeExtractor struct{}

// Extract returns the concatenated text of all pages.
func (n *NativeExtractor) Extract(path string) (text string, err error) {
	// The pdf package panics on malformed cross-reference tables, so a
	// broken download must not take the whole batch down.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d of %s: %w", i, path, err)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("no text extracted from %s", path)
	}
	return b.String(), nil
}
