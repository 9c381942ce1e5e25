package triangulation

import (
	"log/slog"

	"github.com/katalvlaran/alpha3/kernel"
)

// Options configures Build and New. Use DefaultOptions for the documented defaults.
type Options struct {
	// Kernel evaluates every predicate. Default: kernel.Default() (Filtered).
	Kernel kernel.Kernel

	// Logger receives Debug-level construction summaries.
	// Default: slog.Default() tagged with component=triangulation.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithKernel selects the numeric kernel. A nil kernel panics (programmer error).
func WithKernel(k kernel.Kernel) Option {
	if k == nil {
		panic("triangulation: WithKernel: nil kernel")
	}

	return func(o *Options) { o.Kernel = k }
}

// WithLogger routes construction logs to l. A nil logger panics (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("triangulation: WithLogger: nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Kernel: kernel.Default(),
		Logger: slog.Default().With(slog.String("component", "triangulation")),
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
