// SPDX-License-Identifier: MIT
// Package: knob/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate and panic on meaningless inputs (nil functions);
// constructors never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/knob/core"
)

// BuilderOption customizes a build by mutating the builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node key generator: idx -> key.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNodeAttrs sets the attributes of the node at each constructor-local index.
// Panics on nil.
func WithNodeAttrs(fn func(i int) core.Attrs) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeAttrs(nil)")
	}
	return func(c *builderConfig) {
		c.nodeAttrs = fn
	}
}

// WithEdgeAttrs sets the attributes of the edge between constructor-local
// indices u and v. Panics on nil.
func WithEdgeAttrs(fn func(u, v int) core.Attrs) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeAttrs(nil)")
	}
	return func(c *builderConfig) {
		c.edgeAttrs = fn
	}
}

// WithSymmetric emits every edge together with its reverse.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) {
		c.symmetric = true
	}
}

// WithLoops lets RandomSparse draw self-loops.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}
