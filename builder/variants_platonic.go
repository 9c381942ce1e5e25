// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// variants_platonic.go — canonical coordinates of the Platonic solids.
//
// Design:
//   • Single source of truth for the five solids, centred at the origin.
//   • Vertex order is fixed and part of the contract (fixtures index into it).
//   • Circumradii: tetrahedron and cube √3, octahedron 1,
//     icosahedron √(1+φ²), dodecahedron √3.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4
	Cube                             // V=8
	Octahedron                       // V=6
	Dodecahedron                     // V=20
	Icosahedron                      // V=12
)

// platonicVertices maps each solid to its unscaled vertex coordinates.
var platonicVertices = map[PlatonicName][]r3.Vec{
	// Alternate corners of the cube [-1,1]³.
	Tetrahedron: {
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
	},

	// (±1, ±1, ±1) in binary order of (x, y, z) signs, x slowest.
	Cube: signCorners(),

	Octahedron: {
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	},

	// Cube corners, then cyclic permutations of (0, ±1/φ, ±φ).
	Dodecahedron: append(signCorners(), cyclic(1/phi, phi)...),

	// Cyclic permutations of (0, ±1, ±φ).
	Icosahedron: cyclic(1, phi),
}

// signCorners returns (±1, ±1, ±1) with x varying slowest.
func signCorners() []r3.Vec {
	out := make([]r3.Vec, 0, 8)
	for _, x := range [...]float64{-1, 1} {
		for _, y := range [...]float64{-1, 1} {
			for _, z := range [...]float64{-1, 1} {
				out = append(out, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}

	return out
}

// cyclic returns the 12 points (0, ±a, ±b), (±a, ±b, 0), (±b, 0, ±a).
func cyclic(a, b float64) []r3.Vec {
	out := make([]r3.Vec, 0, 12)
	for _, sa := range [...]float64{-1, 1} {
		for _, sb := range [...]float64{-1, 1} {
			u, v := sa*a, sb*b
			out = append(out,
				r3.Vec{X: 0, Y: u, Z: v},
				r3.Vec{X: u, Y: v, Z: 0},
				r3.Vec{X: v, Y: 0, Z: u},
			)
		}
	}

	return out
}
