// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// offset is added to every vertex id.
	offset int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local vertex index to a graph vertex id.
func (c builderConfig) id(i int) int { return c.offset + i }

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithVertexOffset shifts every generated vertex id by k, so that fixtures
// composed in one BuildEdges call can be kept disjoint. Panics if k < 0.
func WithVertexOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithVertexOffset(k<0)")
	}

	return func(c *builderConfig) { c.offset = k }
}
