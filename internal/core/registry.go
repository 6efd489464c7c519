// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"

	"pii-scan/internal/pii"
	"pii-scan/internal/recognizers"
)

// Registry holds the set of recognizers a pipeline runs. The set is fixed
// at construction time; a scan never mutates it, so a single registry can
// back concurrent scans.
type Registry struct {
	descriptors []recognizers.Descriptor
}

// NewRegistry builds a registry from the given descriptors. Registration
// order is preserved and becomes the source-order tie-break during
// reconciliation. Duplicate names are rejected.
func NewRegistry(descriptors []recognizers.Descriptor) (*Registry, error) {
	seen := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("recognizer with empty name")
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate recognizer %q", d.Name)
		}
		seen[d.Name] = true
	}

	copied := make([]recognizers.Descriptor, len(descriptors))
	copy(copied, descriptors)
	return &Registry{descriptors: copied}, nil
}

// Descriptors returns the registered recognizers in registration order.
func (r *Registry) Descriptors() []recognizers.Descriptor {
	return r.descriptors
}

// Len returns the number of registered recognizers.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Categories returns the distinct categories the registered recognizers
// can produce, in registration order.
func (r *Registry) Categories() []pii.Category {
	seen := make(map[pii.Category]bool)
	var categories []pii.Category
	for _, d := range r.descriptors {
		if !seen[d.Category] {
			seen[d.Category] = true
			categories = append(categories, d.Category)
		}
	}
	return categories
}
