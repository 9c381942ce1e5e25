package alphashape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/triangulation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "alphashape"

// Shape is a classified regular triangulation. It is immutable and safe for
// concurrent readers.
type Shape struct {
	tri      *triangulation.Triangulation
	mode     Mode
	tol      float64
	recs     [triangulation.NumDims][]Record
	spectrum *Spectrum

	solidGroup int   // spectrum index of alpha_solid
	coverGroup int   // first spectrum index with no SINGULAR simplex and no EXTERIOR vertex
	solid      []int // solid components per spectrum index
}

// Build triangulates points and classifies every simplex.
//
// Phases: regular triangulation (triangulation.Build with the configured
// kernel), classification (parallel per dimension), spectrum, solid sweep.
// Errors: geom.ErrNonFinite and ErrDegenerateInput (wrapped), kernel errors,
// or ctx.Err() when ctx is cancelled during classification.
func Build(ctx context.Context, points []geom.WeightedPoint, opts ...Option) (*Shape, error) {
	o := gatherOptions(opts...)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "alphashape.Build",
		trace.WithAttributes(
			attribute.Int("points", len(points)),
			attribute.String("kernel", o.Kernel.Name()),
			attribute.String("mode", o.Mode.String()),
		),
	)
	defer span.End()

	start := time.Now()
	tri, err := triangulation.Build(points,
		triangulation.WithKernel(o.Kernel),
		triangulation.WithLogger(o.Logger.With(slog.String("phase", "triangulation"))),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "triangulation failed")
		return nil, fmt.Errorf("Build: %w", err)
	}
	o.Logger.Debug("triangulation ready",
		slog.Int("points", len(points)),
		slog.Int("hidden", len(tri.Hidden())),
		slog.Duration("duration", time.Since(start)),
	)

	s, err := newShape(ctx, tri, o, span)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return s, nil
}

// FromTriangulation classifies an existing triangulation with the kernel it
// carries; WithKernel is ignored. A nil tri wraps ErrInvalidArgument.
func FromTriangulation(ctx context.Context, tri *triangulation.Triangulation, opts ...Option) (*Shape, error) {
	if tri == nil {
		return nil, fmt.Errorf("FromTriangulation: nil triangulation: %w", ErrInvalidArgument)
	}
	o := gatherOptions(opts...)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "alphashape.FromTriangulation",
		trace.WithAttributes(
			attribute.Int("points", len(tri.Points())),
			attribute.String("kernel", tri.Kernel().Name()),
			attribute.String("mode", o.Mode.String()),
		),
	)
	defer span.End()

	s, err := newShape(ctx, tri, o, span)
	if err != nil {
		return nil, fmt.Errorf("FromTriangulation: %w", err)
	}

	return s, nil
}

func newShape(ctx context.Context, tri *triangulation.Triangulation, o Options, span trace.Span) (*Shape, error) {
	start := time.Now()
	c := &classifier{tri: tri, mode: o.Mode, workers: o.Workers}
	if err := c.run(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "classification failed")
		return nil, err
	}
	classified := time.Now()

	s := &Shape{tri: tri, mode: o.Mode, tol: o.Tolerance, recs: c.recs}
	s.spectrum = buildSpectrum(&s.recs, o.Tolerance)
	s.spectrum.shape = s
	s.sweep()

	span.SetAttributes(
		attribute.Int("simplices", tri.Total()),
		attribute.Int("critical_values", s.spectrum.Len()),
		attribute.Float64("alpha_solid", s.FindAlphaSolid()),
	)
	o.Logger.Debug("alpha shape classified",
		slog.String("mode", o.Mode.String()),
		slog.Int("vertices", tri.NumSimplices(triangulation.DimVertex)),
		slog.Int("edges", tri.NumSimplices(triangulation.DimEdge)),
		slog.Int("facets", tri.NumSimplices(triangulation.DimFacet)),
		slog.Int("cells", tri.NumSimplices(triangulation.DimCell)),
		slog.Int("critical_values", s.spectrum.Len()),
		slog.Duration("classify", classified.Sub(start)),
		slog.Duration("spectrum", time.Since(classified)),
	)

	return s, nil
}
