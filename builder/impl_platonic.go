// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     unknown name → ErrOptionViolation.
//   • Emits the solid's vertices in canonical order (variants_platonic.go),
//     scaled by cfg.scale about the origin and moved to cfg.center, each
//     weighted by cfg.weightFn(cfg.rng).
//   • If withCenter, appends the centre last with weight cfg.centerWeight.
//
// Complexity: O(V), V ≤ 20.

package builder

import "github.com/katalvlaran/alpha3/geom"

// PlatonicSolid returns a Constructor for the chosen solid, optionally with
// its centre point.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(dst *[]geom.WeightedPoint, cfg builderConfig) error {
		verts, ok := platonicVertices[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrOptionViolation, "unknown solid %q", name)
		}
		for _, v := range verts {
			emit(dst, cfg, v)
		}
		if withCenter {
			*dst = append(*dst, geom.WeightedPoint{P: cfg.center, W: cfg.centerWeight})
		}

		return nil
	}
}
