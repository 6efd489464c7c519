// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"

	"pii-scan/internal/formatters"
	"pii-scan/internal/pii"
)

// Formatter implements JSON output for machine consumption.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type output struct {
	Results       []formatters.FileResult `json:"results"`
	TotalFindings int                     `json:"total_findings"`
}

func (f *Formatter) Format(results []formatters.FileResult, options formatters.Options) (string, error) {
	out := output{Results: make([]formatters.FileResult, len(results))}
	for i, result := range results {
		// copy findings so redaction never touches the caller's slice
		findings := make([]pii.Finding, len(result.Findings))
		copy(findings, result.Findings)
		if options.HideMatch {
			for j := range findings {
				findings[j].Text = ""
			}
		}
		out.Results[i] = formatters.FileResult{Path: result.Path, Findings: findings}
		out.TotalFindings += len(findings)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
