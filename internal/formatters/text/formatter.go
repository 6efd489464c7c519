// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pii-scan/internal/formatters"
	"pii-scan/internal/pii"
)

// Formatter implements human-readable text output.
type Formatter struct {
	categoryColors map[pii.Category]*color.Color
	header         *color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		categoryColors: map[pii.Category]*color.Color{
			pii.CategoryPersonName:   color.New(color.FgRed),
			pii.CategoryPlaceOfBirth: color.New(color.FgMagenta),
			pii.CategoryPhoneNumber:  color.New(color.FgYellow),
			pii.CategoryEmail:        color.New(color.FgCyan),
		},
		header: color.New(color.FgWhite, color.Bold),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []formatters.FileResult, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	total := 0
	var b strings.Builder
	for _, result := range results {
		if len(result.Findings) == 0 {
			continue
		}
		total += len(result.Findings)

		b.WriteString(f.header.Sprintf("%s (%d findings)", result.Path, len(result.Findings)))
		b.WriteString("\n")
		for _, finding := range result.Findings {
			b.WriteString(f.formatFinding(finding, options))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if total == 0 {
		return "No PII found.", nil
	}
	b.WriteString(fmt.Sprintf("Total: %d findings", total))
	return b.String(), nil
}

func (f *Formatter) formatFinding(finding pii.Finding, options formatters.Options) string {
	categoryColor, ok := f.categoryColors[finding.Category]
	if !ok {
		categoryColor = color.New(color.FgWhite)
	}

	matched := finding.Text
	if options.HideMatch {
		matched = strings.Repeat("*", len([]rune(finding.Text)))
	}

	line := fmt.Sprintf("  [%d:%d] %s  %q",
		finding.Start, finding.End, categoryColor.Sprint(string(finding.Category)), matched)

	if options.Verbose {
		line += fmt.Sprintf("  via %s", strings.Join(finding.Sources, ","))
		if finding.HasScore {
			line += fmt.Sprintf("  score=%.2f", finding.Score)
		}
	}
	return line
}
