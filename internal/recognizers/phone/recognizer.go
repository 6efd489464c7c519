// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone provides the phone number recognizer. Patterns cover German
// national numbers and international notation; the post-filter enforces
// digit-count plausibility and drops well-known test numbers.
package phone

import (
	"regexp"
	"strings"

	"pii-scan/internal/backends"
	"pii-scan/internal/pii"
	"pii-scan/internal/recognizers"
)

// Name is the recognizer identifier recorded in finding provenance.
const Name = "phone"

var patterns = []backends.RegexRule{
	// +49 170 1234567, +49 (0)30 123456, +1-800-555-0100
	{Label: "PHONE", Pattern: regexp.MustCompile(`\+\d{1,3}[ \-/]?(?:\(0\)[ \-/]?)?\d{1,5}(?:[ \-/]?\d{2,8}){1,3}\b`)},
	// 030 1234567, 0171 2234567, 0541/123456, 06221-39100
	{Label: "PHONE", Pattern: regexp.MustCompile(`\b0\d{1,4}[ \-/]\d{3,8}(?:[ \-/]?\d{1,6})?\b`)},
	// bare national numbers written without separators: 01712234567
	{Label: "PHONE", Pattern: regexp.MustCompile(`\b0\d{9,11}\b`)},
}

// testNumbers are placeholder numbers that appear in documentation and test
// data, never as real contacts. Compared against the normalized digit form.
var testNumbers = map[string]bool{
	"1234567":      true,
	"01234567":     true,
	"0123456789":   true,
	"01234567890":  true,
	"1234567890":   true,
	"5550100":      true,
	"05550100":     true,
	"00000000":     true,
	"1111111111":   true,
	"012345678901": true,
}

// New builds the phone number recognizer descriptor.
func New() recognizers.Descriptor {
	return recognizers.Descriptor{
		Name:     Name,
		Category: pii.CategoryPhoneNumber,
		Backends: []backends.Backend{
			backends.NewRegex(patterns...),
		},
		Labels: []string{"PHONE"},
		Filter: plausible,
	}
}

// plausible keeps a match only if its digit count fits a dialable number
// and it is not a known placeholder.
func plausible(_ string, c pii.Candidate) bool {
	digits := normalize(c.Text)
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	if testNumbers[digits] {
		return false
	}
	if sameDigit(digits) {
		return false
	}
	return true
}

// normalize strips every non-digit character.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}
