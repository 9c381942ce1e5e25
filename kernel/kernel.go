package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/alpha3/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for kernel operations.
var (
	// ErrDegenerateSimplex indicates affinely dependent points (or a bad point count).
	ErrDegenerateSimplex = errors.New("kernel: degenerate simplex")

	// ErrPredicateInconsistency marks an internal invariant violation: the exact
	// fallback could not decide a predicate that the caller guaranteed decidable.
	ErrPredicateInconsistency = errors.New("kernel: predicate inconsistency")

	// ErrUnknownKernel indicates an unknown back-end name passed to ByName.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")
)

// Back-end names accepted by ByName.
const (
	NameInexact  = "inexact"
	NameFiltered = "filtered"
	NameExact    = "exact"
)

// Sign is the result of a predicate.
type Sign int

const (
	// Negative: below zero (for PowerTest: q is strictly inside the orthogonal sphere).
	Negative Sign = -1
	// Zero: exactly (or, for Inexact, numerically) zero.
	Zero Sign = 0
	// Positive: above zero.
	Positive Sign = 1
)

// String returns "-", "0" or "+".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return "0"
	}
}

// SignOf returns the Sign of v.
func SignOf(v float64) Sign {
	switch {
	case v < 0:
		return Negative
	case v > 0:
		return Positive
	default:
		return Zero
	}
}

// Kernel is the narrow capability interface injected into the triangulation
// and the classifier.
type Kernel interface {
	// Name identifies the back end ("inexact", "filtered", "exact").
	Name() string

	// Orientation returns the sign of det[b−a; c−a; d−a].
	Orientation(a, b, c, d r3.Vec) Sign

	// PowerTest returns the sign of the power of q with respect to the smallest
	// sphere orthogonal to all points of simplex (1..4 affinely independent points).
	// Negative means q is "attached": it lies strictly inside that sphere.
	PowerTest(simplex []geom.WeightedPoint, q geom.WeightedPoint) Sign

	// SquaredRadius returns R² of the smallest orthogonal sphere of simplex.
	SquaredRadius(simplex []geom.WeightedPoint) (float64, error)
}

// Default returns the kernel used when callers do not choose one: Filtered.
func Default() Kernel {
	return NewFiltered()
}

// ByName resolves a back-end name (case-insensitive).
func ByName(name string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameInexact:
		return Inexact{}, nil
	case NameFiltered:
		return NewFiltered(), nil
	case NameExact:
		return Exact{}, nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownKernel)
	}
}

// checkArity guards the 1..4 point contract shared by all back ends.
func checkArity(simplex []geom.WeightedPoint) error {
	if len(simplex) < 1 || len(simplex) > 4 {
		return fmt.Errorf("%d points: %w", len(simplex), ErrDegenerateSimplex)
	}

	return nil
}

// inconsistency panics with ErrPredicateInconsistency; fatal by contract.
func inconsistency(op string, simplex []geom.WeightedPoint) {
	panic(fmt.Errorf("kernel: %s on %v: %w", op, simplex, ErrPredicateInconsistency))
}
