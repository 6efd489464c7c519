// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"

	"pii-scan/internal/backends"
	"pii-scan/internal/config"
	"pii-scan/internal/gazetteer"
	"pii-scan/internal/recognizers"
	"pii-scan/internal/recognizers/email"
	"pii-scan/internal/recognizers/personname"
	"pii-scan/internal/recognizers/phone"
	"pii-scan/internal/recognizers/placeofbirth"
	"pii-scan/internal/reconcile"
)

// BuildRegistry constructs the standard recognizer set from the enabled
// names list. The statistical recognizers share one gazetteer model. Pass
// nil for model to use the built-in one.
func BuildRegistry(enabled []string, model backends.Model) (*Registry, error) {
	if model == nil {
		model = gazetteer.New()
	}

	var descriptors []recognizers.Descriptor
	for _, name := range enabled {
		switch name {
		case personname.Name:
			descriptors = append(descriptors, personname.New(model))
		case phone.Name:
			descriptors = append(descriptors, phone.New())
		case email.Name:
			descriptors = append(descriptors, email.New())
		case placeofbirth.Name:
			descriptors = append(descriptors, placeofbirth.New(model))
		default:
			return nil, fmt.Errorf("unknown recognizer %q", name)
		}
	}

	return NewRegistry(descriptors)
}

// BuildPipeline assembles a ready-to-run pipeline from the configuration.
func BuildPipeline(cfg *config.Config) (*Pipeline, error) {
	registry, err := BuildRegistry(config.ParseRecognizers(cfg.Defaults.Recognizers), nil)
	if err != nil {
		return nil, err
	}

	engine := reconcile.NewEngine(reconcile.NewPolicy(cfg.CategoryPriorities()))
	engine.SetStrategy(reconcile.Strategy(cfg.Defaults.Strategy))

	pipeline := NewPipeline(registry, engine)
	pipeline.SetFailFast(cfg.Defaults.FailFast)
	pipeline.SetMaxParallel(cfg.Defaults.MaxParallel)
	return pipeline, nil
}
