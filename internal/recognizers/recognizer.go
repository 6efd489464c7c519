// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognizers defines the recognizer contract: a named unit that
// detects exactly one PII category through one or more backend adapters and
// a category-specific post-filter. Recognizers never see each other's
// output; they are fully independent, which is what allows the pipeline to
// run them in parallel.
package recognizers

import (
	"github.com/rotisserie/eris"

	"pii-scan/internal/backends"
	"pii-scan/internal/pii"
)

// Filter inspects one candidate and reports whether it should be kept. It
// must be pure: no side effects, no state, same answer for the same input.
// The full text is passed so filters can look at surrounding context.
type Filter func(text string, c pii.Candidate) bool

// Descriptor describes one recognizer instance.
type Descriptor struct {
	// Name identifies this recognizer in finding provenance.
	Name string

	// Category is the single PII type this recognizer targets.
	Category pii.Category

	// Backends are run in order; their outputs are concatenated.
	Backends []backends.Backend

	// Labels restricts which raw-span labels map to the category. Backends
	// may emit more labels than one recognizer cares about (a NER model
	// tags persons and locations alike); an empty list accepts everything.
	Labels []string

	// Filter, when set, drops implausible matches before they become
	// candidates.
	Filter Filter
}

// Recognize runs every configured backend over the text, maps surviving raw
// spans to candidates tagged with this recognizer's category and name, and
// applies the post-filter.
//
// A backend failure is returned as a recognizer-level error wrapping
// pii.ErrBackendUnavailable; the caller decides whether to isolate or
// escalate it.
func (d Descriptor) Recognize(text string) ([]pii.Candidate, error) {
	var candidates []pii.Candidate
	for _, backend := range d.Backends {
		spans, err := backend.Run(text)
		if err != nil {
			return nil, eris.Wrapf(err, "recognizer %s: %s backend", d.Name, backend.Kind())
		}
		for _, span := range spans {
			if !d.acceptsLabel(span.Label) {
				continue
			}
			matched := ""
			if span.Start >= 0 && span.Start < span.End && span.End <= len(text) {
				matched = text[span.Start:span.End]
			}
			// out-of-range spans keep their offsets and fail span validation
			// in the reconciliation engine instead of panicking here
			c := pii.Candidate{
				Span:     pii.Span{Start: span.Start, End: span.End, Text: matched},
				Category: d.Category,
				Source:   d.Name,
				Score:    span.Score,
				HasScore: span.HasScore,
			}
			if d.Filter != nil && !d.Filter(text, c) {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func (d Descriptor) acceptsLabel(label string) bool {
	if len(d.Labels) == 0 {
		return true
	}
	for _, l := range d.Labels {
		if l == label {
			return true
		}
	}
	return false
}
