// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package reconcile

import "pii-scan/internal/pii"

// Policy is the declared priority order over categories used to break
// cross-category overlap ties. It is configuration data, not code: a higher
// number outranks a lower one, and categories not listed share priority 0.
type Policy struct {
	priorities map[pii.Category]int
}

// NewPolicy builds a policy from an explicit priority table.
func NewPolicy(priorities map[pii.Category]int) Policy {
	copied := make(map[pii.Category]int, len(priorities))
	for cat, prio := range priorities {
		copied[cat] = prio
	}
	return Policy{priorities: copied}
}

// DefaultPolicy ranks statistically produced full-entity categories above
// the narrower pattern-based ones, which can spuriously match inside a
// longer mixed-content mention (a digit run inside a name, for example).
func DefaultPolicy() Policy {
	return NewPolicy(map[pii.Category]int{
		pii.CategoryPersonName:   2,
		pii.CategoryPlaceOfBirth: 2,
		pii.CategoryPhoneNumber:  1,
		pii.CategoryEmail:        1,
	})
}

// Priority returns the declared priority of a category, 0 if undeclared.
func (p Policy) Priority(cat pii.Category) int {
	return p.priorities[cat]
}
