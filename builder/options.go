// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-point weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithScale sets the size of generated shapes (>0, finite).
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithScale(s<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithCenter moves generated shapes so that their centre is at p.
func WithCenter(p r3.Vec) BuilderOption {
	for _, v := range [...]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("builder: WithCenter(non-finite)")
		}
	}
	return func(c *builderConfig) {
		c.center = p
	}
}

// WithCenterWeight sets the weight of the centre point added by
// PlatonicSolid(name, true). Negative values are allowed.
func WithCenterWeight(w float64) BuilderOption {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic("builder: WithCenterWeight(non-finite)")
	}
	return func(c *builderConfig) {
		c.centerWeight = w
	}
}
