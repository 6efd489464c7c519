// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns files into plain text the scan pipeline can
// consume. Each preprocessor handles one source format; a file may be
// served by several (a PDF yields body text and document metadata).
package preprocessors

import (
	"path/filepath"
	"sort"
	"strings"
)

// Document is the text a preprocessor extracted from a file, plus the
// metadata fields that should themselves be scanned.
type Document struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Extracted content
	Text   string
	Format string

	// Source metadata worth scanning (author, creator, GPS tags). Flattened
	// into Text by MetadataText so recognizers see it as ordinary prose.
	Metadata map[string]string

	// Processing information
	ProcessorType string
}

// Preprocessor extracts scannable text from one source format.
type Preprocessor interface {
	// Name identifies the preprocessor in output provenance.
	Name() string

	// CanProcess reports whether this preprocessor handles the file,
	// judged by its extension.
	CanProcess(path string) bool

	// Process extracts a document from the file.
	Process(path string) (*Document, error)
}

// MetadataText renders the metadata map as stable "key: value" lines so
// the scan result is deterministic across runs.
func (d *Document) MetadataText() string {
	if len(d.Metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d.Metadata))
	for key := range d.Metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(d.Metadata[key])
		b.WriteString("\n")
	}
	return b.String()
}

// ScannableText returns the full text to feed the pipeline: extracted body
// first, then the metadata lines.
func (d *Document) ScannableText() string {
	if meta := d.MetadataText(); meta != "" {
		if d.Text == "" {
			return meta
		}
		return d.Text + "\n" + meta
	}
	return d.Text
}

// All returns the built-in preprocessors in priority order.
func All() []Preprocessor {
	return []Preprocessor{
		NewPlaintext(),
		NewPDFText(),
		NewPDFMetadata(),
		NewExifMetadata(),
	}
}

// ForFile returns every built-in preprocessor that can handle the file.
func ForFile(path string) []Preprocessor {
	var matched []Preprocessor
	for _, p := range All() {
		if p.CanProcess(path) {
			matched = append(matched, p)
		}
	}
	return matched
}

func hasExtension(path string, extensions ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
