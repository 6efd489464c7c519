// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pii

import (
	"fmt"
	"sort"
)

// Category is the label of a PII type. The set of categories is closed;
// recognizers declare exactly one target category each.
type Category string

const (
	CategoryPersonName   Category = "PERSON_NAME"
	CategoryPhoneNumber  Category = "PHONE_NUMBER"
	CategoryEmail        Category = "EMAIL"
	CategoryPlaceOfBirth Category = "PLACE_OF_BIRTH"
)

// Categories lists all known categories in declaration order.
func Categories() []Category {
	return []Category{CategoryPersonName, CategoryPhoneNumber, CategoryEmail, CategoryPlaceOfBirth}
}

// Span is a half-open character-offset range [Start, End) into the text it
// was produced from, together with the matched substring. Spans are treated
// as immutable once created.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"matched_text"`
}

// NewSpan builds a Span over text for the range [start, end).
func NewSpan(text string, start, end int) Span {
	return Span{Start: start, End: end, Text: text[start:end]}
}

// Overlaps reports whether two ranges intersect. Containment is a special
// case of overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Validate checks the Span invariants against the source text: the range
// must be non-empty, in bounds, and Text must equal source[Start:End].
// A violation is a programming error in whatever produced the span, so the
// returned error wraps ErrContractViolation.
func (s Span) Validate(source string) error {
	if s.Start < 0 || s.End > len(source) || s.End <= s.Start {
		return fmt.Errorf("%w: span [%d, %d) out of range for text of length %d",
			ErrContractViolation, s.Start, s.End, len(source))
	}
	if got := source[s.Start:s.End]; got != s.Text {
		return fmt.Errorf("%w: span [%d, %d) text %q does not match source %q",
			ErrContractViolation, s.Start, s.End, s.Text, got)
	}
	return nil
}

// RawSpan is a backend adapter's raw output: a labeled range with an
// optional score. Backends that match deterministically (rules, regular
// expressions) leave HasScore false; statistical backends report the model
// probability.
type RawSpan struct {
	Start    int
	End      int
	Label    string
	Score    float64
	HasScore bool
}

// Candidate is an unreconciled mention proposal produced by exactly one
// recognizer invocation. Candidates are immutable after creation and are
// consumed only by the reconciliation engine.
//
// Score is recognizer-local: scores from recognizers of different kinds are
// not comparable and the engine never ranks candidates by score across
// recognizers.
type Candidate struct {
	Span
	Category Category
	Source   string
	Score    float64
	HasScore bool
}

// Validate checks the Candidate contract against the source text.
func (c Candidate) Validate(source string) error {
	if err := c.Span.Validate(source); err != nil {
		return err
	}
	if c.Category == "" {
		return fmt.Errorf("%w: candidate [%d, %d) has no category", ErrContractViolation, c.Start, c.End)
	}
	if c.Source == "" {
		return fmt.Errorf("%w: candidate [%d, %d) has no source recognizer", ErrContractViolation, c.Start, c.End)
	}
	return nil
}

// Finding is a reconciled detection result: one span, one resolved
// category, and the names of every recognizer that contributed to it.
type Finding struct {
	Span
	Category Category `json:"category"`
	Sources  []string `json:"sources"`
	Score    float64  `json:"score,omitempty"`
	HasScore bool     `json:"-"`
}

// AddSource records a contributing recognizer, keeping Sources sorted and
// free of duplicates so equal findings compare equal.
func (f *Finding) AddSource(name string) {
	for _, s := range f.Sources {
		if s == name {
			return
		}
	}
	f.Sources = append(f.Sources, name)
	sort.Strings(f.Sources)
}

// FindingFromCandidate starts a Finding from a single candidate mention.
func FindingFromCandidate(c Candidate) Finding {
	f := Finding{
		Span:     c.Span,
		Category: c.Category,
		Sources:  []string{c.Source},
		Score:    c.Score,
		HasScore: c.HasScore,
	}
	return f
}
