// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires recognizers and the reconciliation engine into the
// scan pipeline: fan out over independent recognizers, join their
// candidates, reconcile overlaps into the final finding list.
package core

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"pii-scan/internal/observability"
	"pii-scan/internal/pii"
	"pii-scan/internal/reconcile"
)

// Pipeline runs a fixed registry of recognizers over input text and
// reconciles their candidates. A pipeline is safe for concurrent use.
type Pipeline struct {
	registry    *Registry
	engine      *reconcile.Engine
	observer    *observability.StandardObserver
	failFast    bool
	maxParallel int
}

// NewPipeline creates a pipeline over the given registry and engine.
func NewPipeline(registry *Registry, engine *reconcile.Engine) *Pipeline {
	return &Pipeline{
		registry: registry,
		engine:   engine,
	}
}

// SetObserver attaches an observer for timing and recognizer-failure
// reporting. A nil observer disables both.
func (p *Pipeline) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
	p.engine.SetObserver(observer)
}

// SetFailFast controls how a recognizer failure is handled. When false
// (the default) a failing recognizer is skipped, its failure is reported
// through the observer, and the remaining recognizers still contribute.
// When true the first failure aborts the whole scan.
func (p *Pipeline) SetFailFast(failFast bool) {
	p.failFast = failFast
}

// SetMaxParallel caps the number of recognizers running concurrently.
// Zero or negative means one goroutine per recognizer.
func (p *Pipeline) SetMaxParallel(n int) {
	p.maxParallel = n
}

// FindPiis scans text with every registered recognizer and returns the
// reconciled findings. The result is deterministic for a given text and
// registry: recognizers run concurrently, but their outputs are joined in
// registration order before reconciliation.
//
// Invalid UTF-8 input fails with pii.ErrInvalidInput. Empty text returns
// an empty list without running any recognizer.
func (p *Pipeline) FindPiis(ctx context.Context, text string) ([]pii.Finding, error) {
	if !utf8.ValidString(text) {
		return nil, eris.Wrap(pii.ErrInvalidInput, "text is not valid UTF-8")
	}
	if text == "" {
		return []pii.Finding{}, nil
	}

	if p.observer != nil {
		done := p.observer.StartTiming("pipeline", "find_piis")
		defer func() {
			done(true, map[string]interface{}{
				"text_length": len(text),
				"recognizers": p.registry.Len(),
			})
		}()
		if p.observer.DebugObserver != nil {
			finishStep := p.observer.DebugObserver.StartStep("pipeline", "find_piis")
			defer finishStep(true, fmt.Sprintf("%d recognizers over %d bytes", p.registry.Len(), len(text)))
		}
	}

	results := make([][]pii.Candidate, p.registry.Len())

	group, ctx := errgroup.WithContext(ctx)
	if p.maxParallel > 0 {
		group.SetLimit(p.maxParallel)
	}
	for i, descriptor := range p.registry.Descriptors() {
		i, descriptor := i, descriptor
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidates, err := descriptor.Recognize(text)
			if err != nil {
				if !p.failFast && errors.Is(err, pii.ErrBackendUnavailable) {
					p.warnRecognizerFailure(descriptor.Name, err)
					return nil
				}
				return err
			}
			results[i] = candidates
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// join in registration order so the engine's source tie-break is stable
	var joined []pii.Candidate
	for i, candidates := range results {
		if p.observer != nil && p.observer.DebugObserver != nil {
			p.observer.DebugObserver.LogMetric(p.registry.Descriptors()[i].Name, "candidates", len(candidates))
		}
		joined = append(joined, candidates...)
	}

	findings, err := p.engine.Reconcile(text, joined)
	if err != nil {
		return nil, eris.Wrap(err, "reconciling candidates")
	}
	return findings, nil
}

func (p *Pipeline) warnRecognizerFailure(name string, err error) {
	if p.observer == nil {
		return
	}
	p.observer.Warn("pipeline", "recognizer_unavailable", err, map[string]interface{}{
		"recognizer": name,
	})
}
