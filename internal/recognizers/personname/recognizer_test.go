// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/gazetteer"
	"pii-scan/internal/pii"
)

func TestRecognizeFullName(t *testing.T) {
	text := "Der Vertrag wurde von Anna Schmidt unterschrieben."
	candidates, err := New(gazetteer.New()).Recognize(text)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "Anna Schmidt", candidates[0].Text)
	assert.Equal(t, pii.CategoryPersonName, candidates[0].Category)
	assert.Equal(t, Name, candidates[0].Source)
	assert.True(t, candidates[0].HasScore)
}

func TestRecognizeIgnoresLocations(t *testing.T) {
	// the model also labels locations; the recognizer must map only PER
	candidates, err := New(gazetteer.New()).Recognize("Das Treffen findet in Hamburg statt.")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestRecognizeNilModelFails(t *testing.T) {
	_, err := New(nil).Recognize("Anna Schmidt war hier.")
	assert.ErrorIs(t, err, pii.ErrBackendUnavailable)
}

func TestDropStopwords(t *testing.T) {
	cases := []struct {
		text string
		keep bool
	}{
		{"Maria Meyer", true},
		{"Katrin", true},
		{"Der", false},
		{"Montag", false},
		{"august", false}, // lowercase single token
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			c := pii.Candidate{Span: pii.Span{Text: tc.text}}
			assert.Equal(t, tc.keep, dropStopwords("", c))
		})
	}
}
