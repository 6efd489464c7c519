// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/pii"
)

func TestRecognizeEmail(t *testing.T) {
	text := "Bitte wenden Sie sich an max.mueller@firma-beispiel.de dazu."
	candidates, err := New().Recognize(text)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "max.mueller@firma-beispiel.de", candidates[0].Text)
	assert.Equal(t, pii.CategoryEmail, candidates[0].Category)
	assert.Equal(t, Name, candidates[0].Source)
	assert.False(t, candidates[0].HasScore)
}

func TestRecognizeEmailVariants(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		count int
	}{
		{"plus addressing", "an anna+newsletter@example.de bitte", 1},
		{"subdomain", "kontakt: j.weber@mail.uni-bonn.de", 1},
		{"two addresses", "a@firma.de und b@firma.de", 2},
		{"no tld", "user@localhost ist keine Adresse", 0},
		{"plain text", "hier steht gar keine Adresse", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates, err := New().Recognize(tc.text)
			require.NoError(t, err)
			assert.Len(t, candidates, tc.count)
		})
	}
}

func TestRecognizeEmailDropsPlaceholders(t *testing.T) {
	cases := []string{
		"noreply@firma.de",
		"Antworten an no-reply@shop.example.de sind sinnlos",
		"postmaster@firma.de meldet Fehler",
	}
	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			candidates, err := New().Recognize(text)
			require.NoError(t, err)
			assert.Empty(t, candidates)
		})
	}
}

func TestRecognizeEmailEmptyText(t *testing.T) {
	candidates, err := New().Recognize("")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
