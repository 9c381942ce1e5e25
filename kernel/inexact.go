package kernel

import (
	"math"

	"github.com/katalvlaran/alpha3/geom"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// o3dErrBound is Shewchuk's static error bound for orient3d: (7 + 56ε)ε with ε = 2⁻⁵³.
const o3dErrBound = (7.0 + 56.0*0x1p-53) * 0x1p-53

// FilterEpsilon is the relative bound under which a float64 power value is
// considered uncertain by Filtered. It is scaled by the magnitude of the terms
// and by the condition number of the Gram system.
const FilterEpsilon = 1e-12

// floatSphere is a float64 orthogonal sphere together with what the filter needs.
type floatSphere struct {
	center r3.Vec
	r2     float64
	cond   float64 // condition number estimate of G (1 for a single point)
	scale  float64 // |c − p_0|² + |w_0|
}

// solveFloat computes the smallest orthogonal sphere of 1..4 weighted points
// in float64. ok is false when the Gram matrix is not numerically positive
// definite, i.e. the points are (nearly) affinely dependent.
func solveFloat(simplex []geom.WeightedPoint) (floatSphere, bool) {
	p0 := simplex[0]
	k := len(simplex) - 1
	if k == 0 {
		return floatSphere{center: p0.P, r2: -p0.W, cond: 1, scale: math.Abs(p0.W)}, true
	}

	d := make([]r3.Vec, k)
	for i := range d {
		d[i] = r3.Sub(simplex[i+1].P, p0.P)
	}
	g := mat.NewSymDense(k, nil)
	b := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			g.SetSym(i, j, r3.Dot(d[i], d[j]))
		}
		b.SetVec(i, (r3.Norm2(d[i])-simplex[i+1].W+p0.W)/2)
	}

	var chol mat.Cholesky
	if !chol.Factorize(g) {
		return floatSphere{}, false
	}
	var lambda mat.VecDense
	if err := chol.SolveVecTo(&lambda, b); err != nil {
		// mat.Condition: numerically singular Gram system.
		return floatSphere{}, false
	}

	var offset r3.Vec
	for i := 0; i < k; i++ {
		offset = r3.Add(offset, r3.Scale(lambda.AtVec(i), d[i]))
	}
	r2 := r3.Norm2(offset) - p0.W

	return floatSphere{
		center: r3.Add(p0.P, offset),
		r2:     r2,
		cond:   chol.Cond(),
		scale:  r3.Norm2(offset) + math.Abs(p0.W),
	}, true
}

// power returns the float64 power of q w.r.t. s and the magnitude of its terms.
func (s floatSphere) power(q geom.WeightedPoint) (value, magnitude float64) {
	dist2 := r3.Norm2(r3.Sub(q.P, s.center))
	value = dist2 - q.W - s.r2
	magnitude = dist2 + math.Abs(q.W) + math.Abs(s.r2) + s.scale

	return value, magnitude
}

// orientFloat returns det[b−a; c−a; d−a] and the permanent used by the error bound.
func orientFloat(a, b, c, d r3.Vec) (det, permanent float64) {
	adx, ady, adz := a.X-d.X, a.Y-d.Y, a.Z-d.Z
	bdx, bdy, bdz := b.X-d.X, b.Y-d.Y, b.Z-d.Z
	cdx, cdy, cdz := c.X-d.X, c.Y-d.Y, c.Z-d.Z

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	// det[a−d; b−d; c−d] has the opposite sign of det[b−a; c−a; d−a].
	det = -(adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady))
	permanent = (math.Abs(bdxcdy)+math.Abs(cdxbdy))*math.Abs(adz) +
		(math.Abs(cdxady)+math.Abs(adxcdy))*math.Abs(bdz) +
		(math.Abs(adxbdy)+math.Abs(bdxady))*math.Abs(cdz)

	return det, permanent
}

// Inexact evaluates every predicate in plain float64.
//
// When the Gram system cannot be factorized at all, Inexact defers to Exact
// rather than inventing a sign: a simplex the exact kernel accepts never makes
// Inexact panic.
type Inexact struct{}

// Name implements Kernel.
func (Inexact) Name() string { return NameInexact }

// Orientation implements Kernel.
func (Inexact) Orientation(a, b, c, d r3.Vec) Sign {
	det, _ := orientFloat(a, b, c, d)

	return SignOf(det)
}

// PowerTest implements Kernel.
func (Inexact) PowerTest(simplex []geom.WeightedPoint, q geom.WeightedPoint) Sign {
	if err := checkArity(simplex); err != nil {
		inconsistency("PowerTest", simplex)
	}
	s, ok := solveFloat(simplex)
	if !ok {
		return Exact{}.PowerTest(simplex, q)
	}
	v, _ := s.power(q)

	return SignOf(v)
}

// SquaredRadius implements Kernel.
func (Inexact) SquaredRadius(simplex []geom.WeightedPoint) (float64, error) {
	if err := checkArity(simplex); err != nil {
		return 0, err
	}
	s, ok := solveFloat(simplex)
	if !ok {
		return Exact{}.SquaredRadius(simplex)
	}

	return s.r2, nil
}
