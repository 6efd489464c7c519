// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package placeofbirth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/gazetteer"
	"pii-scan/internal/pii"
)

func TestRecognizeGeborenIn(t *testing.T) {
	text := "Sie wurde geboren in Rostock und lebt heute dort."
	candidates, err := New(gazetteer.New()).Recognize(text)
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Equal(t, pii.CategoryPlaceOfBirth, c.Category)
		assert.Equal(t, "Rostock", c.Text)
	}
}

func TestRecognizeGeburtsortColon(t *testing.T) {
	text := "Geburtsort: Dresden"
	candidates, err := New(nil).Recognize(text)
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Equal(t, "Dresden", candidates[0].Text)
}

func TestRecognizeLocationWithoutBirthContextDropped(t *testing.T) {
	// a plain location mention is not a place of birth
	candidates, err := New(gazetteer.New()).Recognize("Das Konzert war in Leipzig.")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRecognizeStatisticalSpanWithBirthContext(t *testing.T) {
	// the gazetteer knows multi-word places; the token pattern alone would
	// only cover the first token
	text := "Er ist gebürtig aus Frankfurt am Main."
	candidates, err := New(gazetteer.New()).Recognize(text)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Frankfurt am Main", candidates[0].Text)
}

func TestRecognizePatternOnlyWithNilModel(t *testing.T) {
	// nil model means pattern-only detection, not a failing recognizer
	candidates, err := New(nil).Recognize("Sie wurde geboren in Rostock.")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Rostock", candidates[0].Text)
}

func TestHasBirthContext(t *testing.T) {
	text := "Max wurde 1980 geboren in Bonn und zog nach Berlin um."
	bonn := pii.Candidate{Span: pii.NewSpan(text, 26, 30)}
	berlin := pii.Candidate{Span: pii.NewSpan(text, 44, 50)}

	assert.True(t, hasBirthContext(text, bonn))
	// "geboren" sits more than contextWindow bytes away from "Berlin"?
	// no — the sentence is short, so Berlin still sees the keyword
	assert.True(t, hasBirthContext(text, berlin))

	far := "geboren wurde sie irgendwo. Viel später besuchte sie ihre Tante," +
		" die seit vielen Jahren in Berlin lebte."
	idx := len(far) - len("Berlin lebte.")
	assert.False(t, hasBirthContext(far, pii.Candidate{Span: pii.NewSpan(far, idx, idx+6)}))
}
