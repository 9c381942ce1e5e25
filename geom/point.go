package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNonFinite indicates a NaN or ±Inf coordinate or weight.
var ErrNonFinite = errors.New("geom: NaN or Inf in weighted point")

// WeightedPoint is a location in R³ carrying a real weight.
type WeightedPoint struct {
	// P is the bare location.
	P r3.Vec

	// W is the weight (squared radius of the associated ball); may be negative.
	W float64
}

// Pt is a shorthand constructor used heavily by fixtures and tests.
func Pt(x, y, z, w float64) WeightedPoint {
	return WeightedPoint{P: r3.Vec{X: x, Y: y, Z: z}, W: w}
}

// Validate reports ErrNonFinite when any component is NaN or ±Inf.
func (p WeightedPoint) Validate() error {
	for _, v := range [...]float64{p.P.X, p.P.Y, p.P.Z, p.W} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// Power returns the power of the bare location x with respect to p: |x − p|² − w_p.
func (p WeightedPoint) Power(x r3.Vec) float64 {
	return r3.Norm2(r3.Sub(x, p.P)) - p.W
}

// PowerDistance returns |p − q|² − w_p − w_q.
// Two weighted points are orthogonal when it is zero.
func PowerDistance(p, q WeightedPoint) float64 {
	return r3.Norm2(r3.Sub(p.P, q.P)) - p.W - q.W
}

// String renders the point as "(x, y, z; w)".
func (p WeightedPoint) String() string {
	return fmt.Sprintf("(%g, %g, %g; %g)", p.P.X, p.P.Y, p.P.Z, p.W)
}

// ValidateAll checks every point and returns the first failure wrapped with its index.
func ValidateAll(points []WeightedPoint) error {
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}

// Bounds returns the axis-aligned bounding box of the bare locations.
// For an empty slice both corners are the zero vector.
func Bounds(points []WeightedPoint) (lo, hi r3.Vec) {
	if len(points) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	lo, hi = points[0].P, points[0].P
	for _, p := range points[1:] {
		lo = r3.Vec{X: math.Min(lo.X, p.P.X), Y: math.Min(lo.Y, p.P.Y), Z: math.Min(lo.Z, p.P.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.P.X), Y: math.Max(hi.Y, p.P.Y), Z: math.Max(hi.Z, p.P.Z)}
	}

	return lo, hi
}

// Centroid returns the mean of the bare locations (zero vector for an empty slice).
func Centroid(points []WeightedPoint) r3.Vec {
	var c r3.Vec
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = r3.Add(c, p.P)
	}

	return r3.Scale(1/float64(len(points)), c)
}
