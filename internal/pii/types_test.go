// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pii

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{Start: 0, End: 3}, Span{Start: 5, End: 8}, false},
		{"adjacent ranges do not overlap", Span{Start: 0, End: 3}, Span{Start: 3, End: 6}, false},
		{"partial overlap", Span{Start: 0, End: 5}, Span{Start: 3, End: 8}, true},
		{"containment", Span{Start: 0, End: 10}, Span{Start: 2, End: 5}, true},
		{"identical", Span{Start: 2, End: 5}, Span{Start: 2, End: 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{Start: 0, End: 10}
	assert.True(t, outer.Contains(Span{Start: 2, End: 5}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Span{Start: 8, End: 12}))
	assert.False(t, Span{Start: 2, End: 5}.Contains(outer))
}

func TestSpanValidate(t *testing.T) {
	text := "call Maria Meyer now"

	valid := NewSpan(text, 5, 16)
	require.NoError(t, valid.Validate(text))
	assert.Equal(t, "Maria Meyer", valid.Text)

	cases := []struct {
		name string
		span Span
	}{
		{"end before start", Span{Start: 5, End: 3, Text: ""}},
		{"empty range", Span{Start: 5, End: 5, Text: ""}},
		{"negative start", Span{Start: -1, End: 3, Text: "cal"}},
		{"end past text", Span{Start: 0, End: 100, Text: text}},
		{"text mismatch", Span{Start: 0, End: 4, Text: "ring"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.span.Validate(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContractViolation))
		})
	}
}

func TestCandidateValidate(t *testing.T) {
	text := "reach me at 0171 2234567"

	ok := Candidate{
		Span:     NewSpan(text, 12, 24),
		Category: CategoryPhoneNumber,
		Source:   "phone",
	}
	require.NoError(t, ok.Validate(text))

	noCategory := ok
	noCategory.Category = ""
	assert.ErrorIs(t, noCategory.Validate(text), ErrContractViolation)

	noSource := ok
	noSource.Source = ""
	assert.ErrorIs(t, noSource.Validate(text), ErrContractViolation)
}

func TestFindingAddSource(t *testing.T) {
	f := FindingFromCandidate(Candidate{
		Span:     Span{Start: 0, End: 5, Text: "Maria"},
		Category: CategoryPersonName,
		Source:   "ner",
	})

	f.AddSource("personname")
	f.AddSource("ner") // duplicate must be ignored
	f.AddSource("aliases")

	assert.Equal(t, []string{"aliases", "ner", "personname"}, f.Sources)
}
