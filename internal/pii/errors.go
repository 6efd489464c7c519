// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pii

import "errors"

// Error taxonomy for the finding pipeline. Callers classify failures with
// errors.Is against these sentinels.
var (
	// ErrBackendUnavailable marks a backend adapter that could not be
	// initialized or invoked (for example a missing model). Recoverable at
	// the recognizer level: the recognizer contributes nothing for that run
	// unless the pipeline is configured fail-fast.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrContractViolation marks a candidate mention that breaks its span
	// invariants. Fatal: it signals a defect in a recognizer, not a runtime
	// condition, and aborts reconciliation for the call.
	ErrContractViolation = errors.New("candidate contract violation")

	// ErrInvalidInput marks input that is not scannable text. Fatal and
	// surfaced before any recognizer runs.
	ErrInvalidInput = errors.New("invalid input")
)
