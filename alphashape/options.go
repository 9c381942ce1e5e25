// SPDX-License-Identifier: MIT

package alphashape

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/alpha3/kernel"
)

// Mode selects how non-cell simplices enter the complex.
type Mode int

const (
	// General admits SINGULAR simplices (isolated vertices, dangling edges and facets).
	General Mode = iota
	// Regularized admits a simplex only together with a coface: Entry = Mid
	// for every non-cell, so SINGULAR never occurs.
	Regularized
)

// String returns "general" or "regularized".
func (m Mode) String() string {
	switch m {
	case General:
		return "general"
	case Regularized:
		return "regularized"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance merges critical values closer than Tolerance·max(1, |α|).
	DefaultTolerance = 1e-12

	// DefaultMode is General.
	DefaultMode = General
)

const (
	panicNilKernel        = "alphashape: WithKernel: nil kernel"
	panicModeInvalid      = "alphashape: WithMode: unknown mode"
	panicWorkersInvalid   = "alphashape: WithWorkers: workers must be >= 1"
	panicToleranceInvalid = "alphashape: WithTolerance: tolerance must be finite, non-negative"
	panicNilLogger        = "alphashape: WithLogger: nil logger"
)

// Options configures Build and FromTriangulation.
type Options struct {
	// Kernel drives the triangulation built by Build. FromTriangulation uses
	// the kernel already bound to the triangulation and ignores this field.
	Kernel kernel.Kernel

	// Mode is General or Regularized.
	Mode Mode

	// Workers bounds the goroutines of each classification pass.
	Workers int

	// Tolerance is the relative merge distance of spectrum values.
	Tolerance float64

	// Logger receives Debug-level phase summaries.
	Logger *slog.Logger
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Kernel:    kernel.Default(),
		Mode:      DefaultMode,
		Workers:   runtime.GOMAXPROCS(0),
		Tolerance: DefaultTolerance,
		Logger:    slog.Default().With(slog.String("component", "alphashape")),
	}
}

// WithKernel selects the numeric kernel of the triangulation.
func WithKernel(k kernel.Kernel) Option {
	if k == nil {
		panic(panicNilKernel)
	}

	return func(o *Options) { o.Kernel = k }
}

// WithMode selects General or Regularized classification.
func WithMode(m Mode) Option {
	if m != General && m != Regularized {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.Mode = m }
}

// WithWorkers bounds per-pass parallelism; 1 classifies sequentially.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = n }
}

// WithTolerance sets the relative spectrum merge tolerance; 0 merges only equal values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithLogger routes phase logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.Logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
