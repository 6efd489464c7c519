// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package placeofbirth provides the place-of-birth recognizer. A location
// mention alone is not a place of birth; the recognizer combines the
// statistical backend's location spans with structural token patterns and
// keeps only mentions with birth-related context nearby.
package placeofbirth

import (
	"strings"

	"pii-scan/internal/backends"
	"pii-scan/internal/gazetteer"
	"pii-scan/internal/pii"
	"pii-scan/internal/recognizers"
)

// Name is the recognizer identifier recorded in finding provenance.
const Name = "placeofbirth"

// contextWindow is how far, in bytes, birth keywords may sit from the
// mention in either direction.
const contextWindow = 40

var contextKeywords = []string{"geboren", "geburtsort", "geburtsstadt", "gebürtig"}

var tokenRules = []backends.TokenRule{
	{
		// "geboren in <Place>"
		Label: gazetteer.LabelLocation,
		Pattern: []backends.TokenCondition{
			{Lower: "geboren"},
			{Lower: "in"},
			{Title: true, MinLen: 2},
		},
		MatchFrom: 2,
	},
	{
		// "Geburtsort: <Place>"
		Label: gazetteer.LabelLocation,
		Pattern: []backends.TokenCondition{
			{Lower: "geburtsort"},
			{Lower: ":"},
			{Title: true, MinLen: 2},
		},
		MatchFrom: 2,
	},
	{
		// "Geburtsort <Place>" in tabular text without a colon
		Label: gazetteer.LabelLocation,
		Pattern: []backends.TokenCondition{
			{Lower: "geburtsort"},
			{Title: true, MinLen: 2},
		},
		MatchFrom: 1,
	},
}

// New builds the place-of-birth recognizer around the given model. With a
// nil model the statistical adapter is left out and detection is
// pattern-only, keeping the recognizer functional instead of failing every
// run.
func New(model backends.Model) recognizers.Descriptor {
	adapters := []backends.Backend{backends.NewTokenPattern(tokenRules...)}
	if model != nil {
		adapters = append(adapters, backends.NewStatistical(model))
	}
	return recognizers.Descriptor{
		Name:     Name,
		Category: pii.CategoryPlaceOfBirth,
		Backends: adapters,
		Labels:   []string{gazetteer.LabelLocation},
		Filter:   hasBirthContext,
	}
}

// hasBirthContext keeps a mention only when a birth keyword appears within
// the context window before or after it.
func hasBirthContext(text string, c pii.Candidate) bool {
	lo := c.Start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := c.End + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	window := strings.ToLower(text[lo:hi])
	for _, keyword := range contextKeywords {
		if strings.Contains(window, keyword) {
			return true
		}
	}
	return false
}
