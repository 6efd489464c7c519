// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/pii"
)

func TestRecognizePhoneFormats(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"mobile with space", "Ruf mich an: 0171 2234567", "0171 2234567"},
		{"city with slash", "Zentrale 0541/987654 erreichbar", "0541/987654"},
		{"city with dash", "Fax 06221-391000 bitte", "06221-391000"},
		{"international", "unter +49 170 1234567 melden", "+49 170 1234567"},
		{"bare national", "Notfall 01712234567 speichern", "01712234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates, err := New().Recognize(tc.text)
			require.NoError(t, err)
			require.Len(t, candidates, 1)
			assert.Equal(t, tc.want, candidates[0].Text)
			assert.Equal(t, pii.CategoryPhoneNumber, candidates[0].Category)
		})
	}
}

func TestRecognizePhoneDropsImplausible(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"too few digits", "Code 0123 45 eingeben"},
		{"test number", "Beispiel: 0123456789 eintragen"},
		{"repeated digit", "nicht 1111111111 verwenden"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates, err := New().Recognize(tc.text)
			require.NoError(t, err)
			assert.Empty(t, candidates)
		})
	}
}

func TestRecognizePhoneNoneInPlainText(t *testing.T) {
	candidates, err := New().Recognize("Hier gibt es nur Worte, keine Nummern.")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "491701234567", normalize("+49 (170) 123-45 67"))
	assert.Equal(t, "", normalize("keine Ziffern"))
}

func TestSameDigit(t *testing.T) {
	assert.True(t, sameDigit("0000000"))
	assert.False(t, sameDigit("0123456"))
}
