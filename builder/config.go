// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// config.go - resolved, immutable builder configuration.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/knob/core"
)

// builderConfig is resolved once per BuildGraph call from BuilderOptions.
type builderConfig struct {
	// idFn names the node at a constructor-local index.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand

	// nodeAttrs and edgeAttrs produce attributes from constructor-local indices.
	nodeAttrs func(i int) core.Attrs
	edgeAttrs func(u, v int) core.Attrs

	// symmetric emits every edge in both directions.
	symmetric bool

	// loops lets RandomSparse draw self-loops.
	loops bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		nodeAttrs: func(int) core.Attrs { return nil },
		edgeAttrs: func(int, int) core.Attrs { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
