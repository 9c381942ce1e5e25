// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// impl_cloud.go — RandomCloud, Grid, SphereShell and Point constructors.
//
// Determinism:
//   • RandomCloud draws x, y, z then the weight per point from cfg.rng.
//   • Grid and SphereShell need no RNG; weights still come from cfg.weightFn,
//     which may consume cfg.rng when one is configured.

package builder

import (
	"math"

	"github.com/katalvlaran/alpha3/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// RandomCloud returns a Constructor for n points uniform in the cube of
// half-side cfg.scale around cfg.center. Requires an RNG (ErrNeedRandSource)
// and n ≥ MinRandomPoints (ErrTooFewPoints).
// Complexity: O(n).
func RandomCloud(n int) Constructor {
	return func(dst *[]geom.WeightedPoint, cfg builderConfig) error {
		if err := validateMin(MethodRandomCloud, n, MinRandomPoints); err != nil {
			return err
		}
		if err := validateRand(MethodRandomCloud, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			p := r3.Vec{
				X: 2*cfg.rng.Float64() - 1,
				Y: 2*cfg.rng.Float64() - 1,
				Z: 2*cfg.rng.Float64() - 1,
			}
			emit(dst, cfg, p)
		}

		return nil
	}
}

// Grid returns a Constructor for the nx·ny·nz lattice with spacing cfg.scale,
// whose lowest corner is cfg.center. x varies fastest, then y, then z.
// Each dimension must be ≥ MinGridDim (ErrTooFewPoints).
// Complexity: O(nx·ny·nz).
func Grid(nx, ny, nz int) Constructor {
	return func(dst *[]geom.WeightedPoint, cfg builderConfig) error {
		for _, d := range [...]int{nx, ny, nz} {
			if err := validateMin(MethodGrid, d, MinGridDim); err != nil {
				return err
			}
		}
		for k := 0; k < nz; k++ {
			for j := 0; j < ny; j++ {
				for i := 0; i < nx; i++ {
					emit(dst, cfg, r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)})
				}
			}
		}

		return nil
	}
}

// SphereShell returns a Constructor for n points spread over the sphere of
// radius cfg.scale around cfg.center (Fibonacci lattice). n ≥ MinSpherePoints.
// Complexity: O(n).
func SphereShell(n int) Constructor {
	return func(dst *[]geom.WeightedPoint, cfg builderConfig) error {
		if err := validateMin(MethodSphereShell, n, MinSpherePoints); err != nil {
			return err
		}
		golden := 2 * math.Pi / (phi * phi)
		for i := 0; i < n; i++ {
			z := 1 - (2*float64(i)+1)/float64(n)
			r := math.Sqrt(1 - z*z)
			theta := golden * float64(i)
			emit(dst, cfg, r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z})
		}

		return nil
	}
}

// Point returns a Constructor appending exactly (x, y, z) with weight w,
// ignoring scale, centre and WeightFn. Non-finite values → ErrOptionViolation.
func Point(x, y, z, w float64) Constructor {
	return func(dst *[]geom.WeightedPoint, _ builderConfig) error {
		p := geom.Pt(x, y, z, w)
		if err := p.Validate(); err != nil {
			return builderErrorf(MethodPoint, ErrOptionViolation, "%v", err)
		}
		*dst = append(*dst, p)

		return nil
	}
}
