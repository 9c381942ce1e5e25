// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil               (pure unless seeded)
//   • weightFn     = DefaultWeightFn   (weight 0: plain Delaunay)
//   • scale        = 1.0
//   • center       = origin
//   • centerWeight = 0.0

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for every emitted point except explicit ones.
	weightFn WeightFn

	// Placement: points are scaled about the origin, then moved to center.
	scale  float64 // >0
	center r3.Vec

	// Weight of the optional centre point of PlatonicSolid.
	centerWeight float64
}

const (
	defaultScale        = 1.0
	defaultCenterWeight = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:     DefaultWeightFn,
		scale:        defaultScale,
		centerWeight: defaultCenterWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a unit-frame location into the configured frame.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	return r3.Add(c.center, r3.Scale(c.scale, p))
}

// weight draws the next point weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
