// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package score evaluates recognizer output against gold annotations.
// Matching is exact: a finding counts as correct only when its span and
// category both agree with a gold finding.
package score

import (
	"sort"

	"pii-scan/internal/pii"
)

// Metrics holds precision, recall and F1 for one slice of the evaluation.
type Metrics struct {
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// Report is the result of one evaluation run.
type Report struct {
	Total      Metrics                  `json:"total"`
	PerCategory map[pii.Category]Metrics `json:"per_category"`
}

type spanKey struct {
	start    int
	end      int
	category pii.Category
}

// Evaluate compares found findings against gold findings and computes
// exact-match precision, recall and F1, overall and per category. Duplicate
// spans on either side count once.
func Evaluate(found, gold []pii.Finding) Report {
	foundKeys := keySet(found)
	goldKeys := keySet(gold)

	counts := make(map[pii.Category]*Metrics)
	ensure := func(cat pii.Category) *Metrics {
		if counts[cat] == nil {
			counts[cat] = &Metrics{}
		}
		return counts[cat]
	}

	for key := range foundKeys {
		m := ensure(key.category)
		if goldKeys[key] {
			m.TruePositives++
		} else {
			m.FalsePositives++
		}
	}
	for key := range goldKeys {
		if !foundKeys[key] {
			ensure(key.category).FalseNegatives++
		}
	}

	report := Report{PerCategory: make(map[pii.Category]Metrics, len(counts))}
	for cat, m := range counts {
		finalize(m)
		report.PerCategory[cat] = *m
		report.Total.TruePositives += m.TruePositives
		report.Total.FalsePositives += m.FalsePositives
		report.Total.FalseNegatives += m.FalseNegatives
	}
	finalize(&report.Total)
	return report
}

// Categories returns the categories present in the report, sorted.
func (r Report) Categories() []pii.Category {
	categories := make([]pii.Category, 0, len(r.PerCategory))
	for cat := range r.PerCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

func keySet(findings []pii.Finding) map[spanKey]bool {
	keys := make(map[spanKey]bool, len(findings))
	for _, f := range findings {
		keys[spanKey{start: f.Start, end: f.End, category: f.Category}] = true
	}
	return keys
}

func finalize(m *Metrics) {
	if m.TruePositives+m.FalsePositives > 0 {
		m.Precision = float64(m.TruePositives) / float64(m.TruePositives+m.FalsePositives)
	}
	if m.TruePositives+m.FalseNegatives > 0 {
		m.Recall = float64(m.TruePositives) / float64(m.TruePositives+m.FalseNegatives)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
}
