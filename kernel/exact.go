package kernel

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/alpha3/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// ratVec is a point of Q³. Every finite float64 converts to a big.Rat exactly.
type ratVec [3]*big.Rat

func ratOf(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}

func ratVecOf(p r3.Vec) ratVec {
	return ratVec{ratOf(p.X), ratOf(p.Y), ratOf(p.Z)}
}

func (a ratVec) sub(b ratVec) ratVec {
	return ratVec{
		new(big.Rat).Sub(a[0], b[0]),
		new(big.Rat).Sub(a[1], b[1]),
		new(big.Rat).Sub(a[2], b[2]),
	}
}

func (a ratVec) add(b ratVec) ratVec {
	return ratVec{
		new(big.Rat).Add(a[0], b[0]),
		new(big.Rat).Add(a[1], b[1]),
		new(big.Rat).Add(a[2], b[2]),
	}
}

func (a ratVec) scale(f *big.Rat) ratVec {
	return ratVec{
		new(big.Rat).Mul(a[0], f),
		new(big.Rat).Mul(a[1], f),
		new(big.Rat).Mul(a[2], f),
	}
}

func ratDot(a, b ratVec) *big.Rat {
	s := new(big.Rat).Mul(a[0], b[0])
	s.Add(s, new(big.Rat).Mul(a[1], b[1]))
	s.Add(s, new(big.Rat).Mul(a[2], b[2]))

	return s
}

func ratCross(a, b ratVec) ratVec {
	return ratVec{
		new(big.Rat).Sub(new(big.Rat).Mul(a[1], b[2]), new(big.Rat).Mul(a[2], b[1])),
		new(big.Rat).Sub(new(big.Rat).Mul(a[2], b[0]), new(big.Rat).Mul(a[0], b[2])),
		new(big.Rat).Sub(new(big.Rat).Mul(a[0], b[1]), new(big.Rat).Mul(a[1], b[0])),
	}
}

// solveExact computes the smallest orthogonal sphere of 1..4 weighted points
// over Q. ok is false iff the points are affinely dependent.
func solveExact(simplex []geom.WeightedPoint) (center ratVec, r2 *big.Rat, ok bool) {
	p0 := ratVecOf(simplex[0].P)
	w0 := ratOf(simplex[0].W)
	k := len(simplex) - 1
	if k == 0 {
		return p0, new(big.Rat).Neg(w0), true
	}

	d := make([]ratVec, k)
	for i := range d {
		d[i] = ratVecOf(simplex[i+1].P).sub(p0)
	}

	// Augmented Gram system [G | b].
	half := big.NewRat(1, 2)
	m := make([][]*big.Rat, k)
	for i := 0; i < k; i++ {
		m[i] = make([]*big.Rat, k+1)
		for j := 0; j < k; j++ {
			m[i][j] = ratDot(d[i], d[j])
		}
		b := ratDot(d[i], d[i])
		b.Sub(b, ratOf(simplex[i+1].W))
		b.Add(b, w0)
		m[i][k] = b.Mul(b, half)
	}

	// Gauss–Jordan elimination; any non-zero pivot is exact.
	for col := 0; col < k; col++ {
		pivot := -1
		for row := col; row < k; row++ {
			if m[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return ratVec{}, nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		inv := new(big.Rat).Inv(m[col][col])
		for j := col; j <= k; j++ {
			m[col][j] = new(big.Rat).Mul(m[col][j], inv)
		}
		for row := 0; row < k; row++ {
			if row == col || m[row][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(m[row][col])
			for j := col; j <= k; j++ {
				m[row][j] = new(big.Rat).Sub(m[row][j], new(big.Rat).Mul(f, m[col][j]))
			}
		}
	}

	offset := ratVec{new(big.Rat), new(big.Rat), new(big.Rat)}
	for i := 0; i < k; i++ {
		offset = offset.add(d[i].scale(m[i][k]))
	}
	r2 = ratDot(offset, offset)
	r2.Sub(r2, w0)

	return p0.add(offset), r2, true
}

// Exact evaluates every predicate and construction over math/big.Rat.
type Exact struct{}

// Name implements Kernel.
func (Exact) Name() string { return NameExact }

// Orientation implements Kernel.
func (Exact) Orientation(a, b, c, d r3.Vec) Sign {
	ra := ratVecOf(a)
	u := ratVecOf(b).sub(ra)
	v := ratVecOf(c).sub(ra)
	w := ratVecOf(d).sub(ra)

	return Sign(ratDot(u, ratCross(v, w)).Sign())
}

// PowerTest implements Kernel.
func (Exact) PowerTest(simplex []geom.WeightedPoint, q geom.WeightedPoint) Sign {
	if err := checkArity(simplex); err != nil {
		inconsistency("PowerTest", simplex)
	}
	c, r2, ok := solveExact(simplex)
	if !ok {
		inconsistency("PowerTest", simplex)
	}
	diff := ratVecOf(q.P).sub(c)
	pw := ratDot(diff, diff)
	pw.Sub(pw, ratOf(q.W))
	pw.Sub(pw, r2)

	return Sign(pw.Sign())
}

// SquaredRadius implements Kernel. The exact value is rounded to the nearest float64.
func (Exact) SquaredRadius(simplex []geom.WeightedPoint) (float64, error) {
	if err := checkArity(simplex); err != nil {
		return 0, err
	}
	_, r2, ok := solveExact(simplex)
	if !ok {
		return 0, fmt.Errorf("SquaredRadius(%d points): %w", len(simplex), ErrDegenerateSimplex)
	}
	f, _ := r2.Float64()

	return f, nil
}
