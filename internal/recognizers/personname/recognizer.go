// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package personname provides the person name recognizer. Detection is done
// by the statistical backend; the post-filter removes the classic NER false
// positives, single capitalized function words and sentence starters.
package personname

import (
	"strings"

	"pii-scan/internal/backends"
	"pii-scan/internal/gazetteer"
	"pii-scan/internal/pii"
	"pii-scan/internal/recognizers"
)

// Name is the recognizer identifier recorded in finding provenance.
const Name = "personname"

// stopwords are common German words that statistical models occasionally
// tag as person names when they open a sentence.
var stopwords = map[string]bool{
	"der": true, "die": true, "das": true, "den": true, "dem": true,
	"ein": true, "eine": true, "einer": true, "einem": true, "einen": true,
	"und": true, "oder": true, "aber": true, "doch": true, "denn": true,
	"ich": true, "du": true, "er": true, "sie": true, "es": true, "wir": true,
	"herr": true, "frau": true, "firma": true, "team": true,
	"montag": true, "dienstag": true, "mittwoch": true, "donnerstag": true,
	"freitag": true, "samstag": true, "sonntag": true,
	"januar": true, "februar": true, "märz": true, "april": true, "mai": true,
	"juni": true, "juli": true, "august": true, "september": true,
	"oktober": true, "november": true, "dezember": true,
}

// New builds the person name recognizer around the given model. Passing nil
// keeps the descriptor valid but every run reports a backend failure, which
// the pipeline isolates.
func New(model backends.Model) recognizers.Descriptor {
	return recognizers.Descriptor{
		Name:     Name,
		Category: pii.CategoryPersonName,
		Backends: []backends.Backend{
			backends.NewStatistical(model),
		},
		Labels: []string{gazetteer.LabelPerson},
		Filter: dropStopwords,
	}
}

// dropStopwords rejects single-token matches that are stopwords or not
// capitalized. Multi-token matches pass through: a full "first last" span is
// strong enough evidence on its own.
func dropStopwords(_ string, c pii.Candidate) bool {
	if strings.ContainsRune(strings.TrimSpace(c.Text), ' ') {
		return true
	}
	word := strings.TrimSpace(c.Text)
	if word == "" {
		return false
	}
	if stopwords[strings.ToLower(word)] {
		return false
	}
	first := word[0]
	if first >= 'a' && first <= 'z' {
		return false
	}
	return true
}
