// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/backends"
	"pii-scan/internal/pii"
)

type stubBackend struct {
	spans []pii.RawSpan
	err   error
}

func (b *stubBackend) Run(text string) ([]pii.RawSpan, error) { return b.spans, b.err }
func (b *stubBackend) Kind() string                           { return "stub" }

func TestRecognizeMapsSpansToCandidates(t *testing.T) {
	text := "Maria wohnt in Bonn"
	d := Descriptor{
		Name:     "testrec",
		Category: pii.CategoryPersonName,
		Backends: []backends.Backend{&stubBackend{spans: []pii.RawSpan{
			{Start: 0, End: 5, Label: "PER", Score: 0.8, HasScore: true},
		}}},
	}

	candidates, err := d.Recognize(text)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "Maria", c.Text)
	assert.Equal(t, pii.CategoryPersonName, c.Category)
	assert.Equal(t, "testrec", c.Source)
	assert.True(t, c.HasScore)
	assert.InDelta(t, 0.8, c.Score, 1e-9)
}

func TestRecognizeLabelFiltering(t *testing.T) {
	text := "Maria wohnt in Bonn"
	d := Descriptor{
		Name:     "testrec",
		Category: pii.CategoryPersonName,
		Labels:   []string{"PER"},
		Backends: []backends.Backend{&stubBackend{spans: []pii.RawSpan{
			{Start: 0, End: 5, Label: "PER"},
			{Start: 15, End: 19, Label: "LOC"},
		}}},
	}

	candidates, err := d.Recognize(text)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Maria", candidates[0].Text)
}

func TestRecognizePostFilter(t *testing.T) {
	text := "Der Mann und Maria"
	d := Descriptor{
		Name:     "testrec",
		Category: pii.CategoryPersonName,
		Backends: []backends.Backend{&stubBackend{spans: []pii.RawSpan{
			{Start: 0, End: 3, Label: "PER"},  // "Der"
			{Start: 13, End: 18, Label: "PER"}, // "Maria"
		}}},
		Filter: func(_ string, c pii.Candidate) bool { return c.Text != "Der" },
	}

	candidates, err := d.Recognize(text)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Maria", candidates[0].Text)
}

func TestRecognizeBackendFailure(t *testing.T) {
	d := Descriptor{
		Name:     "testrec",
		Category: pii.CategoryPersonName,
		Backends: []backends.Backend{backends.NewStatistical(nil)},
	}

	_, err := d.Recognize("some text")
	require.Error(t, err)
	assert.ErrorIs(t, err, pii.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "testrec")
}

func TestRecognizeMultipleBackendsConcatenated(t *testing.T) {
	text := "Maria wohnt in Bonn"
	d := Descriptor{
		Name:     "testrec",
		Category: pii.CategoryPersonName,
		Backends: []backends.Backend{
			&stubBackend{spans: []pii.RawSpan{{Start: 0, End: 5, Label: "PER"}}},
			&stubBackend{spans: []pii.RawSpan{{Start: 15, End: 19, Label: "PER"}}},
		},
	}

	candidates, err := d.Recognize(text)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestRecognizeOutOfRangeSpanSurvivesUntilValidation(t *testing.T) {
	d := Descriptor{
		Name:     "testrec",
		Category: pii.CategoryPersonName,
		Backends: []backends.Backend{&stubBackend{spans: []pii.RawSpan{
			{Start: 2, End: 100, Label: "PER"},
		}}},
	}

	// must not panic; the bogus span is caught by engine-side validation
	candidates, err := d.Recognize("tiny")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.ErrorIs(t, candidates[0].Validate("tiny"), pii.ErrContractViolation)
}
