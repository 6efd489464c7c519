// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package piiscan finds personally identifiable information in free text.
// Recognizers for person names, phone numbers, email addresses and places
// of birth run independently over the input; their overlapping candidates
// are reconciled into one flat, non-overlapping list of findings.
package piiscan

import (
	"context"
	"sync"

	"pii-scan/internal/core"
	"pii-scan/internal/pii"
	"pii-scan/internal/reconcile"
)

// Category labels the kind of PII a finding represents.
type Category = pii.Category

// PII categories the built-in recognizers detect.
const (
	CategoryPersonName   = pii.CategoryPersonName
	CategoryPhoneNumber  = pii.CategoryPhoneNumber
	CategoryEmail        = pii.CategoryEmail
	CategoryPlaceOfBirth = pii.CategoryPlaceOfBirth
)

// Finding is one reconciled PII occurrence. Start and End are byte offsets
// into the scanned text; Text always equals text[Start:End].
type Finding = pii.Finding

// Sentinel errors callers can test with errors.Is.
var (
	// ErrBackendUnavailable marks a recognizer whose detection backend
	// could not run. With fail-fast disabled these are skipped, not fatal.
	ErrBackendUnavailable = pii.ErrBackendUnavailable

	// ErrInvalidInput marks input the scanner cannot process, such as
	// text that is not valid UTF-8.
	ErrInvalidInput = pii.ErrInvalidInput
)

// Reconciliation strategies.
const (
	// StrategyEnsureDisjointness merges same-category overlaps and
	// resolves cross-category overlaps by priority. The default.
	StrategyEnsureDisjointness = string(reconcile.StrategyEnsureDisjointness)

	// StrategyMerge merges same-category overlaps but keeps
	// cross-category overlaps side by side.
	StrategyMerge = string(reconcile.StrategyMerge)

	// StrategyKeepAll returns every candidate unreconciled.
	StrategyKeepAll = string(reconcile.StrategyKeepAll)
)

// Config controls scanner construction. The zero value selects all
// built-in recognizers, the default category priorities and the
// ensure-disjointness strategy.
type Config struct {
	// Recognizers selects built-in recognizers by name ("personname",
	// "phone", "email", "placeofbirth"). Empty means all.
	Recognizers []string

	// Strategy is one of the Strategy constants. Empty means
	// StrategyEnsureDisjointness.
	Strategy string

	// Priorities overrides the category priority table used for
	// cross-category overlap resolution. Nil keeps the defaults.
	Priorities map[Category]int

	// FailFast aborts a scan on the first unavailable recognizer instead
	// of skipping it.
	FailFast bool

	// MaxParallel caps concurrently running recognizers. Zero means one
	// goroutine per recognizer.
	MaxParallel int
}

// Scanner scans text for PII. It is immutable after construction and safe
// for concurrent use.
type Scanner struct {
	pipeline *core.Pipeline
}

// NewScanner builds a scanner from the configuration. A nil config selects
// all defaults.
func NewScanner(cfg *Config) (*Scanner, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	enabled := cfg.Recognizers
	if len(enabled) == 0 {
		enabled = []string{"personname", "phone", "email", "placeofbirth"}
	}
	registry, err := core.BuildRegistry(enabled, nil)
	if err != nil {
		return nil, err
	}

	policy := reconcile.DefaultPolicy()
	if cfg.Priorities != nil {
		policy = reconcile.NewPolicy(cfg.Priorities)
	}
	engine := reconcile.NewEngine(policy)
	if cfg.Strategy != "" {
		engine.SetStrategy(reconcile.Strategy(cfg.Strategy))
	}

	pipeline := core.NewPipeline(registry, engine)
	pipeline.SetFailFast(cfg.FailFast)
	pipeline.SetMaxParallel(cfg.MaxParallel)
	return &Scanner{pipeline: pipeline}, nil
}

// FindPiis scans text and returns the reconciled findings, ordered by
// position. The result is deterministic for a given text and config.
func (s *Scanner) FindPiis(ctx context.Context, text string) ([]Finding, error) {
	return s.pipeline.FindPiis(ctx, text)
}

var (
	defaultScanner     *Scanner
	defaultScannerErr  error
	defaultScannerOnce sync.Once
)

// FindPiis scans text with the default scanner.
func FindPiis(ctx context.Context, text string) ([]Finding, error) {
	defaultScannerOnce.Do(func() {
		defaultScanner, defaultScannerErr = NewScanner(nil)
	})
	if defaultScannerErr != nil {
		return nil, defaultScannerErr
	}
	return defaultScanner.FindPiis(ctx, text)
}
