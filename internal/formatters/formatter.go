// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"sort"

	"pii-scan/internal/pii"
)

// FileResult groups the findings of one scanned source.
type FileResult struct {
	// Path identifies the source; "-" for stdin.
	Path string `json:"path"`

	// Findings are the reconciled findings for this source.
	Findings []pii.Finding `json:"findings"`
}

// Options defines configuration options for formatters.
type Options struct {
	Verbose   bool // display source provenance and scores
	NoColor   bool // disable colored output
	HideMatch bool // omit the matched text itself
}

// Formatter renders scan results in one output format.
type Formatter interface {
	// Format renders the results.
	Format(results []FileResult, options Options) (string, error)

	// Name returns the formatter name (e.g. "json", "text").
	Name() string

	// Description returns a brief description of the output.
	Description() string

	// FileExtension returns the recommended file extension for this format.
	FileExtension() string
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
