// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package reconcile merges the candidate mentions of all recognizers into
// one coherent finding list. Recognizers detect independently and disagree
// freely; this engine is the single place where overlapping, contained, and
// duplicated spans are resolved.
package reconcile

import (
	"sort"

	"pii-scan/internal/observability"
	"pii-scan/internal/pii"
)

// Strategy selects how aggressively overlaps are resolved.
type Strategy string

const (
	// StrategyKeepAll performs no overlap resolution: candidates are only
	// deduplicated and ordered.
	StrategyKeepAll Strategy = "keep_all"

	// StrategyMerge unions overlapping same-category mentions but leaves
	// cross-category overlaps untouched.
	StrategyMerge Strategy = "merge"

	// StrategyEnsureDisjointness applies the full policy: same-category
	// union, cross-category priority tie-break, containment collapse. This
	// is the default of the finding pipeline.
	StrategyEnsureDisjointness Strategy = "ensure_disjointness"
)

// Engine reconciles candidate mentions into findings. The engine holds only
// configuration; every Reconcile call is independent and stateless.
type Engine struct {
	policy   Policy
	strategy Strategy
	observer *observability.StandardObserver
}

// NewEngine creates an engine with the given priority policy and the
// ensure-disjointness strategy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy, strategy: StrategyEnsureDisjointness}
}

// SetStrategy overrides the resolution strategy. Unknown values fall back
// to ensure_disjointness.
func (e *Engine) SetStrategy(strategy Strategy) {
	switch strategy {
	case StrategyKeepAll, StrategyMerge, StrategyEnsureDisjointness:
		e.strategy = strategy
	default:
		e.strategy = StrategyEnsureDisjointness
	}
}

// SetObserver sets the observability component. Ambiguous overlaps that the
// engine retains are reported through it.
func (e *Engine) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// Reconcile validates all candidates against the source text and resolves
// them into an ordered finding list (ascending start, then ascending end).
//
// Any candidate violating its span contract aborts the call: a malformed
// candidate is a defect in a recognizer and there is no safe partial result.
// Given the same multiset of candidates the output is identical across runs
// regardless of input order.
func (e *Engine) Reconcile(text string, candidates []pii.Candidate) ([]pii.Finding, error) {
	finish := e.observer.StartTiming("reconcile", string(e.strategy))

	for _, c := range candidates {
		if err := c.Validate(text); err != nil {
			finish(false, map[string]interface{}{"candidates": len(candidates)})
			return nil, err
		}
	}

	var findings []pii.Finding
	switch e.strategy {
	case StrategyKeepAll:
		findings = toFindings(candidates)
	case StrategyMerge:
		findings = mergeSameCategory(text, candidates)
	default:
		findings = e.resolveCrossCategory(mergeSameCategory(text, candidates))
	}

	findings = dedupe(findings)
	orderFindings(findings)

	finish(true, map[string]interface{}{
		"candidates": len(candidates),
		"findings":   len(findings),
	})
	return findings, nil
}

// sortCandidates establishes the stable total order required for a
// deterministic merge: start ascending, end descending (longer spans first),
// then category and source as final tie-breaks.
func sortCandidates(candidates []pii.Candidate) []pii.Candidate {
	sorted := append([]pii.Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End > b.End
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Source < b.Source
	})
	return sorted
}

func toFindings(candidates []pii.Candidate) []pii.Finding {
	findings := make([]pii.Finding, 0, len(candidates))
	for _, c := range sortCandidates(candidates) {
		findings = append(findings, pii.FindingFromCandidate(c))
	}
	return findings
}

// mergeSameCategory unions overlapping mentions of the same category into a
// single finding spanning [min start, max end), recording every contributing
// recognizer. Multiple recognizers reporting the same entity type corroborate
// each other; they must not duplicate output.
//
// The merged score is the maximum of the contributing scores. Scores are
// recognizer-local, so the maximum only preserves the strongest single piece
// of evidence; it never sums or averages across scales.
func mergeSameCategory(text string, candidates []pii.Candidate) []pii.Finding {
	var out []pii.Finding
	open := make(map[pii.Category]int) // index of the growing finding per category

	for _, c := range sortCandidates(candidates) {
		if idx, ok := open[c.Category]; ok && c.Start < out[idx].End {
			f := &out[idx]
			if c.End > f.End {
				f.End = c.End
				f.Text = text[f.Start:f.End]
			}
			f.AddSource(c.Source)
			if c.HasScore && (!f.HasScore || c.Score > f.Score) {
				f.Score = c.Score
				f.HasScore = true
			}
			continue
		}
		out = append(out, pii.FindingFromCandidate(c))
		open[c.Category] = len(out) - 1
	}
	return out
}

// resolveCrossCategory applies the declared priority policy to overlaps
// between findings of different categories. Same-category findings are
// already disjoint at this point.
//
// Rules, in order:
//   - different priority: the higher-priority category survives;
//   - equal priority, identical span: both survive, reported as ambiguous;
//   - equal priority, full containment: the longer span survives, since it
//     carries at least as much identifying information;
//   - equal priority, partial overlap: both survive, reported as ambiguous.
//     The engine does not silently discard what it cannot safely
//     disambiguate.
func (e *Engine) resolveCrossCategory(findings []pii.Finding) []pii.Finding {
	sorted := append([]pii.Finding(nil), findings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End > b.End
		}
		if pa, pb := e.policy.Priority(a.Category), e.policy.Priority(b.Category); pa != pb {
			return pa > pb
		}
		return a.Category < b.Category
	})

	var kept []pii.Finding
	for _, f := range sorted {
		drop := false
		for i := 0; i < len(kept); i++ {
			k := kept[i]
			if !k.Overlaps(f.Span) {
				continue
			}
			keptPrio, newPrio := e.policy.Priority(k.Category), e.policy.Priority(f.Category)
			switch {
			case newPrio > keptPrio:
				kept = append(kept[:i], kept[i+1:]...)
				i--
			case newPrio < keptPrio:
				drop = true
			case k.Span == f.Span:
				// identical range, equal priority, different category: there
				// is no safe winner, surface both
				e.warnAmbiguous(k, f)
			case k.Contains(f.Span):
				// the sort order guarantees k starts no later and ends no
				// earlier, so containment can only go this way
				drop = true
			default:
				e.warnAmbiguous(k, f)
			}
			if drop {
				break
			}
		}
		if !drop {
			kept = append(kept, f)
		}
	}
	return kept
}

func (e *Engine) warnAmbiguous(a, b pii.Finding) {
	e.observer.Warn("reconcile", "ambiguous_overlap", nil, map[string]interface{}{
		"category_a": string(a.Category),
		"span_a":     []int{a.Start, a.End},
		"category_b": string(b.Category),
		"span_b":     []int{b.Start, b.End},
	})
}

// dedupe collapses findings with identical span and category, merging their
// source sets. Required for the idempotence of reconciliation.
func dedupe(findings []pii.Finding) []pii.Finding {
	type key struct {
		start, end int
		category   pii.Category
	}
	seen := make(map[key]int, len(findings))
	var out []pii.Finding
	for _, f := range findings {
		k := key{f.Start, f.End, f.Category}
		if idx, ok := seen[k]; ok {
			for _, src := range f.Sources {
				out[idx].AddSource(src)
			}
			if f.HasScore && (!out[idx].HasScore || f.Score > out[idx].Score) {
				out[idx].Score = f.Score
				out[idx].HasScore = true
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, f)
	}
	return out
}

// orderFindings sorts the final list: ascending start, then ascending end,
// then category so that retained ambiguous overlaps have a fixed order.
func orderFindings(findings []pii.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Category < b.Category
	})
}
