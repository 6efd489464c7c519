// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package backends

import (
	"fmt"

	"pii-scan/internal/pii"
)

// Model is the narrow contract to a pretrained sequence-labeling model.
// Model implementations live outside this core; anything that can label
// character ranges in text (an in-process gazetteer, an ONNX session, a
// remote inference service wrapper) plugs in here.
//
// Predict must be deterministic for identical input and safe for concurrent
// use; loaded model state is read-only after initialization.
type Model interface {
	Predict(text string) ([]pii.RawSpan, error)
}

// StatisticalBackend adapts a Model to the Backend contract. Raw spans come
// back with the model probability as their score.
type StatisticalBackend struct {
	model Model
}

// NewStatistical wraps a model. A nil model yields a backend that reports
// ErrBackendUnavailable on every run, which the recognizer layer downgrades
// to an empty contribution unless fail-fast is configured.
func NewStatistical(model Model) *StatisticalBackend {
	return &StatisticalBackend{model: model}
}

// Kind implements Backend.
func (b *StatisticalBackend) Kind() string { return "statistical" }

// Run implements Backend.
func (b *StatisticalBackend) Run(text string) ([]pii.RawSpan, error) {
	if b.model == nil {
		return nil, fmt.Errorf("%w: statistical backend has no model configured", pii.ErrBackendUnavailable)
	}
	if text == "" {
		return nil, nil
	}
	spans, err := b.model.Predict(text)
	if err != nil {
		return nil, fmt.Errorf("%w: model inference failed: %v", pii.ErrBackendUnavailable, err)
	}
	return spans, nil
}
