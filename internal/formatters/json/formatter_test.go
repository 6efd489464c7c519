// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	encjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-scan/internal/formatters"
	"pii-scan/internal/pii"
)

func sampleResults() []formatters.FileResult {
	return []formatters.FileResult{
		{
			Path: "letter.txt",
			Findings: []pii.Finding{
				{
					Span:     pii.Span{Start: 5, End: 21, Text: "hans@example.com"},
					Category: pii.CategoryEmail,
					Sources:  []string{"email"},
				},
			},
		},
		{Path: "empty.txt"},
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := NewFormatter().Format(sampleResults(), formatters.Options{})
	require.NoError(t, err)

	var decoded struct {
		Results []struct {
			Path     string `json:"path"`
			Findings []struct {
				Start       int    `json:"start"`
				End         int    `json:"end"`
				MatchedText string `json:"matched_text"`
				Category    string `json:"category"`
			} `json:"findings"`
		} `json:"results"`
		TotalFindings int `json:"total_findings"`
	}
	require.NoError(t, encjson.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Results, 2)
	assert.Equal(t, 1, decoded.TotalFindings)
	assert.Equal(t, "letter.txt", decoded.Results[0].Path)
	assert.Equal(t, "hans@example.com", decoded.Results[0].Findings[0].MatchedText)
	assert.Equal(t, "EMAIL", decoded.Results[0].Findings[0].Category)
	assert.NotNil(t, decoded.Results[1].Findings)
}

func TestFormatJSONHideMatchCopies(t *testing.T) {
	results := sampleResults()
	out, err := NewFormatter().Format(results, formatters.Options{HideMatch: true})
	require.NoError(t, err)

	assert.NotContains(t, out, "hans@example.com")
	// the caller's findings are untouched
	assert.Equal(t, "hans@example.com", results[0].Findings[0].Text)
}
