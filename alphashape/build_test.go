package alphashape_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/alpha3/alphashape"
	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/kernel"
	"github.com/stretchr/testify/assert"
)

func TestBuild_Errors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		pts  []geom.WeightedPoint
		want error
	}{
		{"empty", nil, alphashape.ErrDegenerateInput},
		{"three points", []geom.WeightedPoint{
			geom.Pt(0, 0, 0, 0), geom.Pt(1, 0, 0, 0), geom.Pt(0, 1, 0, 0),
		}, alphashape.ErrDegenerateInput},
		{"coplanar", []geom.WeightedPoint{
			geom.Pt(0, 0, 0, 0), geom.Pt(1, 0, 0, 0), geom.Pt(0, 1, 0, 0),
			geom.Pt(1, 1, 0, 0), geom.Pt(2, 3, 0, 1),
		}, alphashape.ErrDegenerateInput},
		{"collinear", []geom.WeightedPoint{
			geom.Pt(0, 0, 0, 0), geom.Pt(1, 1, 1, 0), geom.Pt(2, 2, 2, 0), geom.Pt(3, 3, 3, 0),
		}, alphashape.ErrDegenerateInput},
		{"NaN", []geom.WeightedPoint{
			geom.Pt(0, 0, 0, 0), geom.Pt(1, 0, 0, 0), geom.Pt(0, 1, 0, 0), geom.Pt(0, 0, math.NaN(), 0),
		}, geom.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := alphashape.Build(ctx, tc.pts)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, s)
		})
	}
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := alphashape.Build(ctx, randomCloud(t, 40, 1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s)
}

func TestBuild_Accessors(t *testing.T) {
	s := mustBuild(t, tetraWithCentroid(t, -2), alphashape.WithTolerance(1e-6))
	assert.Equal(t, alphashape.General, s.Mode())
	assert.Equal(t, 1e-6, s.Tolerance())
	assert.Equal(t, kernel.Default().Name(), s.Triangulation().Kernel().Name())
	assert.Len(t, s.Records(), s.Triangulation().Total())
	for _, r := range s.Records() {
		assert.Equal(t, s.Triangulation().Key(r.Simplex), r.Key)
	}
}

func TestBuild_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mustBuild(t, tetraWithCentroid(t, -2), alphashape.WithLogger(logger))
	assert.Contains(t, buf.String(), "triangulation ready")
	assert.Contains(t, buf.String(), "alpha shape classified")
	assert.Contains(t, buf.String(), "critical_values=5")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { alphashape.WithKernel(nil) })
	assert.Panics(t, func() { alphashape.WithMode(alphashape.Mode(9)) })
	assert.Panics(t, func() { alphashape.WithWorkers(0) })
	assert.Panics(t, func() { alphashape.WithTolerance(-1) })
	assert.Panics(t, func() { alphashape.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { alphashape.WithTolerance(math.Inf(1)) })
	assert.Panics(t, func() { alphashape.WithLogger(nil) })
	assert.NotPanics(t, func() { alphashape.WithTolerance(0) })
}

func TestDefaultOptions(t *testing.T) {
	o := alphashape.DefaultOptions()
	assert.Equal(t, alphashape.DefaultTolerance, o.Tolerance)
	assert.Equal(t, alphashape.General, o.Mode)
	assert.GreaterOrEqual(t, o.Workers, 1)
	assert.NotNil(t, o.Kernel)
	assert.NotNil(t, o.Logger)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "EXTERIOR", alphashape.Exterior.String())
	assert.Equal(t, "SINGULAR", alphashape.Singular.String())
	assert.Equal(t, "REGULAR", alphashape.Regular.String())
	assert.Equal(t, "INTERIOR", alphashape.Interior.String())
	assert.Equal(t, "Class(7)", alphashape.Class(7).String())
	for c := alphashape.Class(0); c < alphashape.NumClasses; c++ {
		assert.NotContains(t, c.String(), "Class(")
	}
	assert.Equal(t, "general", alphashape.General.String())
	assert.Equal(t, "regularized", alphashape.Regularized.String())

	s := mustBuild(t, tetraWithCentroid(t, -2))
	ev := s.FiltrationSlice()[0]
	assert.Equal(t, "0 vertex#0 SINGULAR", ev.String())
}

func TestInterval_Classify(t *testing.T) {
	iv := alphashape.Interval{Entry: 1, Mid: 2, Max: 3}
	assert.Equal(t, 1.0, iv.Min())
	assert.Equal(t, alphashape.Exterior, iv.Classify(0.5))
	assert.Equal(t, alphashape.Singular, iv.Classify(1))
	assert.Equal(t, alphashape.Regular, iv.Classify(2))
	assert.Equal(t, alphashape.Interior, iv.Classify(3))

	hull := alphashape.Interval{Entry: 2, Mid: 2, Max: math.Inf(1)}
	assert.Equal(t, alphashape.Regular, hull.Classify(1e300))
}
