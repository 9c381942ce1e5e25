package alphashape_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/alpha3/alphashape"
	"github.com/katalvlaran/alpha3/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_TetraWithCentroid works through the hand-computed intervals of
// a regular tetrahedron (weights 0) split by a light centre (weight -2):
//
//	cells                   R² = 11/4           [11/4, 11/4, 11/4]
//	hull facets             attached (centre)   [11/4, 11/4, +Inf]
//	inner facets c-pi-pj    R² = 9/4            [9/4,  11/4, 11/4]
//	hull edges              R² = 2              [2,    9/4,  +Inf]
//	centre edges            R² = 25/12          [25/12, 9/4, 11/4]
//	corners                 -w = 0              [0,    2,    +Inf]
//	centre                  -w = 2              [2,    25/12, 11/4]
func TestScenario_TetraWithCentroid(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -2))
	tri := s.Triangulation()
	require.Empty(t, tri.Hidden())

	// Radii are correctly rounded, so the spectrum is exact.
	assert.Equal(t, []float64{0, 2, 25.0 / 12, 2.25, 2.75}, s.Spectrum().Alphas())

	centre, err := tri.Find(4)
	require.NoError(t, err)
	iv, err := s.Interval(centre)
	require.NoError(t, err)
	assertClose(t, 2, iv.Entry)
	assertClose(t, 25.0/12, iv.Mid)
	assertClose(t, 2.75, iv.Max)

	assert.Equal(t, alphashape.Exterior, classOf(t, s, centre, 1.9))
	assert.Equal(t, alphashape.Singular, classOf(t, s, centre, 2.05))
	assert.Equal(t, alphashape.Regular, classOf(t, s, centre, 2.7))
	assert.Equal(t, alphashape.Interior, classOf(t, s, centre, 2.75))

	hull, err := tri.Find(0, 1, 2)
	require.NoError(t, err)
	rec, err := s.Record(hull)
	require.NoError(t, err)
	assert.True(t, rec.Attached)
	assert.Equal(t, alphashape.InfiniteCell, rec.MaxBy)
	assert.Equal(t, []int{0, 1, 2}, rec.Key)
	assertClose(t, rec.Interval.Mid, rec.Interval.Entry)

	inner, err := tri.Find(0, 1, 4)
	require.NoError(t, err)
	rec, err = s.Record(inner)
	require.NoError(t, err)
	assert.False(t, rec.Attached)
	assertClose(t, 2.25, rec.Interval.Entry)
	c0, _ := tri.FacetCells(inner.ID)
	assert.Equal(t, triangulation.Simplex{Dim: triangulation.DimCell, ID: c0}, rec.MidBy, "tie goes to the smaller cell")

	// alpha_solid: the first value with no SINGULAR simplex.
	solid := s.FindAlphaSolid()
	assert.Equal(t, 2.75, solid)
	assert.Equal(t, alphashape.Interior, classOf(t, s, centre, solid))

	boundary, err := s.BoundaryFacets(solid)
	require.NoError(t, err)
	require.Len(t, boundary, 4)
	for _, f := range boundary {
		assert.True(t, tri.OnHull(f))
		assert.NotContains(t, tri.Key(f), 4, "centre is not on the surface")
	}

	n, err := s.NumberOfSolidComponents(solid)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.NumberOfSolidComponents(2.5)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	opt, err := s.FindOptimalAlpha(1)
	require.NoError(t, err)
	assert.Equal(t, solid, opt)
	_, err = s.FindOptimalAlpha(0)
	assert.ErrorIs(t, err, alphashape.ErrInvalidArgument)
}

// TestScenario_HeavyCentroidHidden: a centre whose power w.r.t. the cell is
// positive is hidden and never classified.
func TestScenario_HeavyCentroidHidden(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -5))
	tri := s.Triangulation()
	assert.Equal(t, []int{4}, tri.Hidden())
	assert.Len(t, s.Records(), 15)

	assert.Equal(t, []float64{0, 2, 8.0 / 3, 3}, s.Spectrum().Alphas())
	assert.Equal(t, 3.0, s.FindAlphaSolid())

	_, err := tri.Find(4)
	assert.ErrorIs(t, err, triangulation.ErrInvalidSimplex)
}

// TestManifoldBoundary checks the surface at alpha_solid. It bounds a single
// solid with no SINGULAR simplex, and every surface edge has an even number of
// surface facets: two on a manifold edge, four or more where the solid
// pinches. The symmetric tetrahedra are manifold.
func TestManifoldBoundary(t *testing.T) {
	shapes := map[string]*alphashape.Shape{
		"centroid": mustBuild(t, tetraWithCentroid(t, -2)),
		"hidden":   mustBuild(t, tetraWithCentroid(t, -5)),
	}
	for seed := int64(1); seed <= 8; seed++ {
		shapes[fmt.Sprintf("cloud-%d", seed)] = mustBuild(t, randomCloud(t, 60, seed))
	}

	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			tri := s.Triangulation()
			solid := s.FindAlphaSolid()

			n, err := s.NumberOfSolidComponents(solid)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			for d := triangulation.DimVertex; d <= triangulation.DimCell; d++ {
				singular, err := s.Simplices(d, alphashape.Singular, solid)
				require.NoError(t, err)
				assert.Empty(t, singular, "%s", d)
			}

			boundary, err := s.BoundaryFacets(solid)
			require.NoError(t, err)
			require.NotEmpty(t, boundary)
			surface := make(map[int]bool, len(boundary))
			for _, f := range boundary {
				surface[f.ID] = true
			}
			for _, f := range boundary {
				for _, e := range tri.Faces(f) {
					k := 0
					for _, cf := range tri.Cofaces(e) {
						if surface[cf.ID] {
							k++
						}
					}
					assert.True(t, k >= 2 && k%2 == 0, "%s has %d surface facets", e, k)
					if !strings.HasPrefix(name, "cloud") {
						assert.Equal(t, 2, k, "%s", e)
					}
				}
			}

			opt, err := s.FindOptimalAlpha(1)
			require.NoError(t, err)
			assert.LessOrEqual(t, opt, solid)
			n, err = s.NumberOfSolidComponents(opt)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

// TestMerging: a coarse tolerance folds 2 and 25/12 into one value; a simplex
// crossing both reports only its final class.
func TestMerging(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -2), alphashape.WithTolerance(0.1))
	assert.Equal(t, []float64{0, 25.0 / 12, 2.25, 2.75}, s.Spectrum().Alphas())

	centre, err := s.Triangulation().Find(4)
	require.NoError(t, err)
	events, err := s.Spectrum().Events(1)
	require.NoError(t, err)
	var seen []alphashape.Class
	for _, ev := range events {
		if ev.Simplex == centre {
			seen = append(seen, ev.Class)
		}
	}
	assert.Equal(t, []alphashape.Class{alphashape.Regular}, seen)
}

// TestSpectrumQueries covers bounds, indexing and errors.
func TestSpectrumQueries(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -2))
	sp := s.Spectrum()
	require.Equal(t, 5, sp.Len())

	a, err := sp.NthAlpha(3)
	require.NoError(t, err)
	assert.Equal(t, 2.25, a)
	_, err = sp.NthAlpha(5)
	assert.ErrorIs(t, err, alphashape.ErrOutOfRange)
	_, err = sp.Events(-1)
	assert.ErrorIs(t, err, alphashape.ErrOutOfRange)

	lo, ok := sp.LowerBound(2.5)
	assert.True(t, ok)
	assert.Equal(t, 2.25, lo)
	hi, ok := sp.UpperBound(2.25)
	assert.True(t, ok)
	assert.Equal(t, 2.75, hi)
	_, ok = sp.UpperBound(2.75)
	assert.False(t, ok)
	lo, ok = sp.LowerBound(0)
	assert.True(t, ok)
	assert.Zero(t, lo)

	snap, err := sp.Snapshot(2.5)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Index())
	assert.Equal(t, 2.5, snap.Alpha())
	_, err = sp.Snapshot(-1)
	assert.ErrorIs(t, err, alphashape.ErrNegativeAlpha)

	total := 0
	for i := 0; i < sp.Len(); i++ {
		ev, err := sp.Events(i)
		require.NoError(t, err)
		require.NotEmpty(t, ev)
		for _, e := range ev {
			assert.Equal(t, sp.Alphas()[i], e.Alpha)
		}
		total += len(ev)
	}
	assert.Len(t, s.FiltrationSlice(), total)
}

// TestQueryErrors covers argument validation of the point queries.
func TestQueryErrors(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -2))
	cell := triangulation.Simplex{Dim: triangulation.DimCell, ID: 0}

	_, err := s.Classify(cell, -0.1)
	assert.ErrorIs(t, err, alphashape.ErrNegativeAlpha)
	assert.ErrorIs(t, err, alphashape.ErrInvalidArgument)
	_, err = s.Classify(cell, math.NaN())
	assert.ErrorIs(t, err, alphashape.ErrNegativeAlpha)
	_, err = s.BoundaryFacets(-1)
	assert.ErrorIs(t, err, alphashape.ErrInvalidArgument)
	_, err = s.Complex(-1)
	assert.ErrorIs(t, err, alphashape.ErrNegativeAlpha)
	_, err = s.NumberOfSolidComponents(-1)
	assert.ErrorIs(t, err, alphashape.ErrNegativeAlpha)

	missing := triangulation.Simplex{Dim: triangulation.DimCell, ID: 99}
	_, err = s.Classify(missing, 1)
	assert.ErrorIs(t, err, alphashape.ErrSimplexNotFound)
	_, err = s.Record(missing)
	assert.ErrorIs(t, err, alphashape.ErrSimplexNotFound)
	snap, err := s.Spectrum().Snapshot(1)
	require.NoError(t, err)
	_, err = snap.Classify(missing)
	assert.ErrorIs(t, err, alphashape.ErrSimplexNotFound)
	_, err = s.Simplices(triangulation.Dim(7), alphashape.Regular, 1)
	assert.ErrorIs(t, err, alphashape.ErrInvalidArgument)

	got, err := s.Classify(cell, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, alphashape.Interior, got, "+Inf is a valid alpha")
}

// TestSnapshotInsideMergedGroup: with a coarse tolerance 2 and 25/12 share one
// spectrum value, yet a snapshot at α = 2 answers exactly like Shape.Classify
// and Shape.Complex.
func TestSnapshotInsideMergedGroup(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -2), alphashape.WithTolerance(0.1))
	tri := s.Triangulation()
	centre, err := tri.Find(4)
	require.NoError(t, err)

	snap, err := s.Spectrum().Snapshot(2)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Index())
	got, err := snap.Classify(centre)
	require.NoError(t, err)
	assert.Equal(t, alphashape.Singular, got)

	for _, a := range []float64{0, 1, 2, 2.04, 25.0 / 12, 2.1, 2.2, 2.25, 2.5, 2.75, 3} {
		snap, err := s.Spectrum().Snapshot(a)
		require.NoError(t, err)
		for _, smp := range allSimplices(tri) {
			c, err := snap.Classify(smp)
			require.NoError(t, err)
			assert.Equal(t, classOf(t, s, smp, a), c, "%s at %g", smp, a)
		}
		cx, err := s.Complex(a)
		require.NoError(t, err)
		assert.Equal(t, cx, snap.Complex(), "complex at %g", a)
	}
}
