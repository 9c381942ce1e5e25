// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Cloud(bopts, cons...). Resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same options, seed and constructor order ⇒ identical clouds.
//   - Constructors return sentinel errors; only option constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/alpha3/geom"
)

// Constructor appends points to dst using the resolved builderConfig.
// Constructors validate parameters before appending anything.
type Constructor func(dst *[]geom.WeightedPoint, cfg builderConfig) error

// Cloud resolves bopts and applies every constructor in order, returning the
// concatenated points. Input point indices follow constructor order.
//
// Errors:
//   - a nil constructor → ErrConstructFailed;
//   - constructor errors are wrapped once with "Cloud: %w";
//   - a non-finite point (e.g. from a custom WeightFn) → ErrConstructFailed.
//
// Complexity: Σ cost of constructors plus O(n) validation.
func Cloud(bopts []BuilderOption, cons ...Constructor) ([]geom.WeightedPoint, error) {
	cfg := newBuilderConfig(bopts...)

	var pts []geom.WeightedPoint
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Cloud: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&pts, cfg); err != nil {
			return nil, fmt.Errorf("Cloud: %w", err)
		}
	}
	if err := geom.ValidateAll(pts); err != nil {
		return nil, fmt.Errorf("Cloud: %w: %w", ErrConstructFailed, err)
	}

	return pts, nil
}

// =============================================================================
// Factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// PlatonicSolid(name, withCenter) — vertices of a Platonic solid, optionally
//   followed by its centre weighted by WithCenterWeight.
// RandomCloud(n)                  — n points uniform in the cube of half-side Scale; needs an RNG.
// Grid(nx, ny, nz)                — lattice with spacing Scale, x fastest.
// SphereShell(n)                  — n Fibonacci points on the sphere of radius Scale.
// Point(x, y, z, w)               — one explicit point (not scaled or offset).
