// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package backends

import (
	"regexp"

	"pii-scan/internal/pii"
)

// RegexRule pairs a label with the compiled pattern that produces it.
type RegexRule struct {
	Label   string
	Pattern *regexp.Regexp
}

// RegexBackend matches fixed patterns against the raw text. Like the
// token-pattern backend it emits no scores; a pattern either matches or it
// does not.
type RegexBackend struct {
	rules []RegexRule
}

// NewRegex builds a backend over a fixed rule set.
func NewRegex(rules ...RegexRule) *RegexBackend {
	return &RegexBackend{rules: rules}
}

// Kind implements Backend.
func (b *RegexBackend) Kind() string { return "regex" }

// Run implements Backend. regexp matching is leftmost-first, so output
// order is fixed for identical input.
func (b *RegexBackend) Run(text string) ([]pii.RawSpan, error) {
	if text == "" {
		return nil, nil
	}
	var spans []pii.RawSpan
	for _, rule := range b.rules {
		if rule.Pattern == nil {
			continue
		}
		for _, idx := range rule.Pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, pii.RawSpan{Start: idx[0], End: idx[1], Label: rule.Label})
		}
	}
	return spans, nil
}
