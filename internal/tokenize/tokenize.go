// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tokenize provides the lightweight tokenizer used by the
// token-pattern backend. Tokens carry byte offsets into the original text so
// that every downstream span satisfies text[Start:End] == Text.
package tokenize

import (
	"strings"
	"unicode"
)

// Token is a single tokenizer output unit.
type Token struct {
	Start int
	End   int
	Text  string
}

// Lower returns the lowercased token text.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// IsTitle reports whether the token starts with an uppercase letter followed
// only by non-uppercase characters (e.g. "Berlin", not "BERLIN" or "iPhone").
func (t Token) IsTitle() bool {
	for i, r := range t.Text {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return t.Text != ""
}

// IsDigit reports whether the token consists solely of digits.
func (t Token) IsDigit() bool {
	for _, r := range t.Text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return t.Text != ""
}

// Shape returns the orthographic shape of the token: uppercase letters map
// to 'X', lowercase to 'x', digits to 'd', everything else is kept. Runs
// longer than four characters are truncated, matching the convention of
// common NLP toolkits ("Xxxxx" -> "Xxxx", "123456" -> "dddd").
func (t Token) Shape() string {
	var b strings.Builder
	var last rune
	run := 0
	for _, r := range t.Text {
		var c rune
		switch {
		case unicode.IsUpper(r):
			c = 'X'
		case unicode.IsLower(r):
			c = 'x'
		case unicode.IsDigit(r):
			c = 'd'
		default:
			c = r
		}
		if c == last {
			run++
			if run >= 4 {
				continue
			}
		} else {
			run = 0
			last = c
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Tokenize splits text into word and punctuation tokens. Words are maximal
// runs of letters and digits, with apostrophes and hyphens kept inside a
// word when surrounded by letters ("O'Connor", "Anne-Marie"). Any other
// non-space rune becomes its own token.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)

	// byte offset of each rune, plus the terminating offset
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = pos

	isWord := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWord(r):
			j := i + 1
			for j < len(runes) {
				if isWord(runes[j]) {
					j++
					continue
				}
				// keep infix apostrophe or hyphen between letters
				if (runes[j] == '\'' || runes[j] == '-') && j+1 < len(runes) && unicode.IsLetter(runes[j+1]) && unicode.IsLetter(runes[j-1]) {
					j += 2
					continue
				}
				break
			}
			tokens = append(tokens, Token{Start: offsets[i], End: offsets[j], Text: text[offsets[i]:offsets[j]]})
			i = j
		default:
			tokens = append(tokens, Token{Start: offsets[i], End: offsets[i+1], Text: text[offsets[i]:offsets[i+1]]})
			i++
		}
	}
	return tokens
}
