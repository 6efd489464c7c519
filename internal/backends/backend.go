// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package backends contains the uniform adapters around the underlying
// detection engines. There is a closed set of variants: the statistical
// model adapter, the token-pattern adapter, and the regex adapter. New kinds
// of engines are added as new variants of the Backend interface, not through
// open-ended reflection.
package backends

import "pii-scan/internal/pii"

// Backend runs one underlying engine over text and returns its raw labeled
// spans. Implementations must be deterministic for identical input, must
// return no matches (not an error) for empty or unparseable text, and must
// be safe for concurrent read-only use across calls.
type Backend interface {
	Run(text string) ([]pii.RawSpan, error)

	// Kind identifies the adapter variant, e.g. "statistical", "token_pattern",
	// "regex". Used only for diagnostics.
	Kind() string
}
