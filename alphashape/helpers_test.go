package alphashape_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/alpha3/alphashape"
	"github.com/katalvlaran/alpha3/builder"
	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tetraWithCentroid is the regular tetrahedron of circumradius² 3 plus its
// centre (input index 4) with weight w.
func tetraWithCentroid(t testing.TB, w float64) []geom.WeightedPoint {
	t.Helper()
	pts, err := builder.Cloud(
		[]builder.BuilderOption{builder.WithCenterWeight(w)},
		builder.PlatonicSolid(builder.Tetrahedron, true),
	)
	require.NoError(t, err)

	return pts
}

// randomCloud is a generic weighted cloud.
func randomCloud(t testing.TB, n int, seed int64) []geom.WeightedPoint {
	t.Helper()
	pts, err := builder.Cloud(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 0.02)},
		builder.RandomCloud(n),
	)
	require.NoError(t, err)

	return pts
}

func mustBuild(t testing.TB, pts []geom.WeightedPoint, opts ...alphashape.Option) *alphashape.Shape {
	t.Helper()
	s, err := alphashape.Build(context.Background(), pts, opts...)
	require.NoError(t, err)

	return s
}

// probes returns every critical value, the midpoints between them, 0 and a
// value past the last one.
func probes(s *alphashape.Shape) []float64 {
	alphas := s.Spectrum().Alphas()
	out := []float64{0}
	for i, a := range alphas {
		out = append(out, a)
		if i+1 < len(alphas) {
			out = append(out, (a+alphas[i+1])/2)
		}
	}

	return append(out, alphas[len(alphas)-1]+1)
}

// midpoints returns values strictly between critical values, away from every breakpoint.
func midpoints(s *alphashape.Shape) []float64 {
	alphas := s.Spectrum().Alphas()
	var out []float64
	for i := 0; i+1 < len(alphas); i++ {
		out = append(out, (alphas[i]+alphas[i+1])/2)
	}

	return append(out, alphas[len(alphas)-1]+1)
}

func classOf(t testing.TB, s *alphashape.Shape, smp triangulation.Simplex, alpha float64) alphashape.Class {
	t.Helper()
	c, err := s.Classify(smp, alpha)
	require.NoError(t, err)

	return c
}

// assertClose compares breakpoints, treating equal infinities as equal.
func assertClose(t testing.TB, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		assert.Equal(t, want, got, msgAndArgs...)
		return
	}
	assert.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), msgAndArgs...)
}

// allSimplices lists every simplex of tri by dimension, then arena order.
func allSimplices(tri *triangulation.Triangulation) []triangulation.Simplex {
	var out []triangulation.Simplex
	for d := triangulation.DimVertex; d <= triangulation.DimCell; d++ {
		out = append(out, tri.Simplices(d)...)
	}

	return out
}
