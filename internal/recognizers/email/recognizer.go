// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package email provides the email address recognizer. It aims at finding
// anything that looks like an email address, even when not strictly
// RFC-compliant; the post-filter removes obvious placeholder addresses.
package email

import (
	"regexp"
	"strings"

	"pii-scan/internal/backends"
	"pii-scan/internal/pii"
	"pii-scan/internal/recognizers"
)

// Name is the recognizer identifier recorded in finding provenance.
const Name = "email"

// emailPattern matches a local part, an @, and a dotted domain with a TLD.
// IP-address domains and quoted local parts are not supported.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9!#$%&'*+\-/=?^_` + "`" + `{|}~.]+@(?:[a-zA-Z0-9](?:[a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,63}`)

// placeholderLocalParts are local parts that never identify a person.
var placeholderLocalParts = []string{
	"noreply", "no-reply", "donotreply", "do-not-reply", "postmaster",
	"mailer-daemon", "abuse", "hostmaster", "webmaster",
}

// New builds the email recognizer descriptor.
func New() recognizers.Descriptor {
	return recognizers.Descriptor{
		Name:     Name,
		Category: pii.CategoryEmail,
		Backends: []backends.Backend{
			backends.NewRegex(backends.RegexRule{Label: "EMAIL", Pattern: emailPattern}),
		},
		Labels: []string{"EMAIL"},
		Filter: dropPlaceholders,
	}
}

// dropPlaceholders removes role addresses that carry no personal
// information.
func dropPlaceholders(_ string, c pii.Candidate) bool {
	at := strings.Index(c.Text, "@")
	if at <= 0 {
		return false
	}
	local := strings.ToLower(c.Text[:at])
	for _, placeholder := range placeholderLocalParts {
		if local == placeholder {
			return false
		}
	}
	// a leading or trailing dot in the local part is always a false positive
	// picked up from surrounding punctuation
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	return true
}
