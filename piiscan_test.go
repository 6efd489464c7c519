// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package piiscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPiisDefaultScanner(t *testing.T) {
	findings, err := FindPiis(context.Background(),
		"Klaus Weber, geboren in München, Mail klaus.weber@example.de, Tel. 0171 2234567.")
	require.NoError(t, err)

	byCategory := make(map[Category][]string)
	for _, f := range findings {
		byCategory[f.Category] = append(byCategory[f.Category], f.Text)
	}

	assert.Equal(t, []string{"Klaus Weber"}, byCategory[CategoryPersonName])
	assert.Equal(t, []string{"München"}, byCategory[CategoryPlaceOfBirth])
	assert.Equal(t, []string{"klaus.weber@example.de"}, byCategory[CategoryEmail])
	assert.Equal(t, []string{"0171 2234567"}, byCategory[CategoryPhoneNumber])
}

func TestFindPiisNonOverlapping(t *testing.T) {
	scanner, err := NewScanner(nil)
	require.NoError(t, err)

	findings, err := scanner.FindPiis(context.Background(),
		"Frau Sabine Fischer, gebürtig aus Frankfurt am Main, meldet sich morgen.")
	require.NoError(t, err)

	for i := 1; i < len(findings); i++ {
		assert.GreaterOrEqual(t, findings[i].Start, findings[i-1].End)
	}
}

func TestNewScannerSubsetOfRecognizers(t *testing.T) {
	scanner, err := NewScanner(&Config{Recognizers: []string{"email"}})
	require.NoError(t, err)

	findings, err := scanner.FindPiis(context.Background(), "Hans Müller, hans@example.com")
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, CategoryEmail, findings[0].Category)
}

func TestNewScannerUnknownRecognizer(t *testing.T) {
	_, err := NewScanner(&Config{Recognizers: []string{"dreams"}})
	assert.Error(t, err)
}

func TestScannerKeepAllStrategy(t *testing.T) {
	scanner, err := NewScanner(&Config{
		Recognizers: []string{"personname", "placeofbirth"},
		Strategy:    StrategyKeepAll,
	})
	require.NoError(t, err)

	// keep_all returns one finding per candidate, duplicates included
	findings, err := scanner.FindPiis(context.Background(), "Eva Braun, geboren in Potsdam.")
	require.NoError(t, err)
	assert.NotEmpty(t, findings)
}

func TestScannerInvalidInput(t *testing.T) {
	scanner, err := NewScanner(nil)
	require.NoError(t, err)

	_, err = scanner.FindPiis(context.Background(), "abc\xff")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
