// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gazetteer implements the statistical backend's model contract with
// an embedded lexicon of German first names, family names, and places. It
// exists so the library detects something useful out of the box; production
// deployments swap in a trained sequence model behind the same interface.
package gazetteer

import (
	"strings"

	"pii-scan/internal/pii"
	"pii-scan/internal/tokenize"
)

// Label values emitted by the model. They follow the CoNLL-style tag set
// that trained NER models emit, so recognizers configured against a real
// model work unchanged against the gazetteer.
const (
	LabelPerson   = "PER"
	LabelLocation = "LOC"
)

// Pseudo-probabilities per evidence strength. The gazetteer cannot estimate
// real probabilities; these constants rank its own outputs only.
const (
	scoreFullName  = 0.90 // first name followed by family name
	scoreFirstName = 0.70 // first name alone
	scorePlace     = 0.85 // known place name
)

// Model is a lexicon-backed named-entity model.
type Model struct {
	lex *lexicon
}

// New returns a model over the shared embedded lexicon.
func New() *Model {
	return &Model{lex: loadLexicon()}
}

// Predict implements the model contract of the statistical backend. It scans
// tokens left to right, preferring the longest match at each position, so
// output is deterministic for identical input.
func (m *Model) Predict(text string) ([]pii.RawSpan, error) {
	tokens := tokenize.Tokenize(text)

	var spans []pii.RawSpan
	i := 0
	for i < len(tokens) {
		if !tokens[i].IsTitle() {
			i++
			continue
		}

		if span, consumed := m.matchPlace(text, tokens, i); consumed > 0 {
			spans = append(spans, span)
			i += consumed
			continue
		}
		if span, consumed := m.matchPerson(text, tokens, i); consumed > 0 {
			spans = append(spans, span)
			i += consumed
			continue
		}
		i++
	}
	return spans, nil
}

// matchPlace probes for the longest known place name starting at tokens[i].
func (m *Model) matchPlace(text string, tokens []tokenize.Token, i int) (pii.RawSpan, int) {
	for n := m.lex.maxPlaceWords; n >= 1; n-- {
		if i+n > len(tokens) {
			continue
		}
		parts := make([]string, 0, n)
		for j := 0; j < n; j++ {
			parts = append(parts, tokens[i+j].Lower())
		}
		if !m.lex.places[strings.Join(parts, " ")] {
			continue
		}
		return pii.RawSpan{
			Start:    tokens[i].Start,
			End:      tokens[i+n-1].End,
			Label:    LabelLocation,
			Score:    scorePlace,
			HasScore: true,
		}, n
	}
	return pii.RawSpan{}, 0
}

// matchPerson recognizes a known first name, optionally followed by a
// title-cased family name. A family name alone is not reported: too many
// German surnames are also common nouns (Koch, Weber, Vogel).
func (m *Model) matchPerson(text string, tokens []tokenize.Token, i int) (pii.RawSpan, int) {
	if !m.lex.firstNames[tokens[i].Lower()] {
		return pii.RawSpan{}, 0
	}
	if i+1 < len(tokens) && tokens[i+1].IsTitle() && m.lex.lastNames[tokens[i+1].Lower()] {
		return pii.RawSpan{
			Start:    tokens[i].Start,
			End:      tokens[i+1].End,
			Label:    LabelPerson,
			Score:    scoreFullName,
			HasScore: true,
		}, 2
	}
	return pii.RawSpan{
		Start:    tokens[i].Start,
		End:      tokens[i].End,
		Label:    LabelPerson,
		Score:    scoreFirstName,
		HasScore: true,
	}, 1
}
