package kernel

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/alpha3/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Filtered evaluates predicates in float64 and recomputes uncertain signs with
// Exact. Orientation is guarded by Shewchuk's proven static bound, so its signs
// equal Exact's. PowerTest is guarded by FilterEpsilon scaled by the term
// magnitude and a condition estimate of the Gram system; that guard is an
// empirical estimate, not a proven forward-error bound.
//
// Radii are constructions, not predicates: SquaredRadius returns the same
// correctly rounded value as Exact, so critical values and their ties do not
// depend on float64 rounding.
//
// A Filtered kernel is safe for concurrent use.
type Filtered struct {
	exact     Exact
	fallbacks atomic.Uint64
}

// NewFiltered returns a ready Filtered kernel.
func NewFiltered() *Filtered {
	return &Filtered{}
}

// Name implements Kernel.
func (*Filtered) Name() string { return NameFiltered }

// Fallbacks reports how many predicates needed the exact path so far.
func (f *Filtered) Fallbacks() uint64 {
	return f.fallbacks.Load()
}

// Orientation implements Kernel.
func (f *Filtered) Orientation(a, b, c, d r3.Vec) Sign {
	det, permanent := orientFloat(a, b, c, d)
	if math.Abs(det) > o3dErrBound*permanent {
		return SignOf(det)
	}
	f.fallbacks.Add(1)

	return f.exact.Orientation(a, b, c, d)
}

// PowerTest implements Kernel.
func (f *Filtered) PowerTest(simplex []geom.WeightedPoint, q geom.WeightedPoint) Sign {
	if err := checkArity(simplex); err != nil {
		inconsistency("PowerTest", simplex)
	}
	if s, ok := solveFloat(simplex); ok {
		v, magnitude := s.power(q)
		if math.Abs(v) > FilterEpsilon*magnitude*math.Max(1, s.cond) {
			return SignOf(v)
		}
	}
	f.fallbacks.Add(1)

	return f.exact.PowerTest(simplex, q)
}

// SquaredRadius implements Kernel. A single point is exact in float64 (−w);
// larger simplices are solved over math/big.Rat. Fallbacks does not count radii.
func (f *Filtered) SquaredRadius(simplex []geom.WeightedPoint) (float64, error) {
	if err := checkArity(simplex); err != nil {
		return 0, err
	}
	if len(simplex) == 1 {
		return -simplex[0].W, nil
	}

	return f.exact.SquaredRadius(simplex)
}
