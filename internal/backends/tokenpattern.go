// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package backends

import (
	"pii-scan/internal/pii"
	"pii-scan/internal/tokenize"
)

// TokenCondition constrains a single token inside a token pattern. Zero
// values leave an attribute unconstrained; all set attributes must hold.
type TokenCondition struct {
	Lower  string   // exact lowercased form
	AnyOf  []string // one of these lowercased forms
	Shape  string   // orthographic shape, see tokenize.Token.Shape
	Title  bool     // token must be title-cased
	Digits bool     // token must consist of digits only
	MinLen int      // minimum length in bytes
}

func (c TokenCondition) matches(tok tokenize.Token) bool {
	if c.Lower != "" && tok.Lower() != c.Lower {
		return false
	}
	if len(c.AnyOf) > 0 {
		found := false
		lower := tok.Lower()
		for _, want := range c.AnyOf {
			if lower == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.Shape != "" && tok.Shape() != c.Shape {
		return false
	}
	if c.Title && !tok.IsTitle() {
		return false
	}
	if c.Digits && !tok.IsDigit() {
		return false
	}
	if c.MinLen > 0 && len(tok.Text) < c.MinLen {
		return false
	}
	return true
}

// TokenRule is one structural rule: a label and the token sequence that
// produces it. MatchFrom marks the first token of the emitted span, so rules
// can require leading context tokens ("geboren in <Place>") without
// including them in the match.
type TokenRule struct {
	Label     string
	Pattern   []TokenCondition
	MatchFrom int
}

// TokenPatternBackend matches structural rules over tokenized text. Rules
// are either satisfied or not, so raw spans carry no score.
type TokenPatternBackend struct {
	rules []TokenRule
}

// NewTokenPattern builds a backend over a fixed rule set.
func NewTokenPattern(rules ...TokenRule) *TokenPatternBackend {
	return &TokenPatternBackend{rules: rules}
}

// Kind implements Backend.
func (b *TokenPatternBackend) Kind() string { return "token_pattern" }

// Run implements Backend. Rules are applied in declaration order and each
// rule scans the token stream left to right, so output order is fixed for
// identical input.
func (b *TokenPatternBackend) Run(text string) ([]pii.RawSpan, error) {
	if text == "" || len(b.rules) == 0 {
		return nil, nil
	}
	tokens := tokenize.Tokenize(text)

	var spans []pii.RawSpan
	for _, rule := range b.rules {
		if len(rule.Pattern) == 0 || rule.MatchFrom < 0 || rule.MatchFrom >= len(rule.Pattern) {
			continue
		}
		for i := 0; i+len(rule.Pattern) <= len(tokens); i++ {
			matched := true
			for j, cond := range rule.Pattern {
				if !cond.matches(tokens[i+j]) {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}
			first := tokens[i+rule.MatchFrom]
			last := tokens[i+len(rule.Pattern)-1]
			spans = append(spans, pii.RawSpan{
				Start: first.Start,
				End:   last.End,
				Label: rule.Label,
			})
		}
	}
	return spans, nil
}
