// SPDX-License-Identifier: MIT

package alphashape

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/alpha3/triangulation"
)

// Sentinel errors. Every message is prefixed with "alphashape: ...".
// Callers match with errors.Is; wrapped values keep the sentinel reachable.
var (
	// ErrInvalidArgument is the umbrella for rejected query arguments.
	ErrInvalidArgument = errors.New("alphashape: invalid argument")

	// ErrNegativeAlpha is returned for α < 0 or NaN. It wraps ErrInvalidArgument.
	ErrNegativeAlpha = fmt.Errorf("%w: alpha must be in [0, +Inf)", ErrInvalidArgument)

	// ErrSimplexNotFound indicates a simplex that does not belong to the shape's triangulation.
	ErrSimplexNotFound = errors.New("alphashape: simplex not found")

	// ErrOutOfRange indicates a spectrum index outside [0, Len()).
	ErrOutOfRange = errors.New("alphashape: index out of range")

	// ErrDegenerateInput is re-exported from triangulation for callers of Build.
	ErrDegenerateInput = triangulation.ErrDegenerateInput
)

// Class is the role of a simplex in the alpha complex. The order is meaningful:
// a simplex only ever moves up as α grows.
type Class int

const (
	// Exterior: not in the complex.
	Exterior Class = iota
	// Singular: in the complex, but no coface is.
	Singular
	// Regular: on the boundary: some coface is in the complex, not all are interior.
	Regular
	// Interior: every coface is interior (cells: in the complex).
	Interior
)

// NumClasses is the number of classes.
const NumClasses = 4

// String returns the upper-case class name.
func (c Class) String() string {
	switch c {
	case Exterior:
		return "EXTERIOR"
	case Singular:
		return "SINGULAR"
	case Regular:
		return "REGULAR"
	case Interior:
		return "INTERIOR"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Interval holds the three breakpoints of one simplex; Entry ≤ Mid ≤ Max.
// Max is +Inf for simplices on the convex hull. Entry may be negative (a
// vertex with positive weight is admitted before α = 0).
type Interval struct {
	Entry float64
	Mid   float64
	Max   float64
}

// Min is α_min, the value at which the simplex enters the complex.
func (iv Interval) Min() float64 { return iv.Entry }

// Classify maps α to a class:
//
//	α < Entry        EXTERIOR
//	Entry ≤ α < Mid  SINGULAR
//	Mid ≤ α < Max    REGULAR
//	α ≥ Max          INTERIOR
func (iv Interval) Classify(alpha float64) Class {
	switch {
	case alpha < iv.Entry:
		return Exterior
	case alpha < iv.Mid:
		return Singular
	case alpha < iv.Max:
		return Regular
	default:
		return Interior
	}
}

// InfiniteCell stands for the infinite side of a convex-hull facet in Record.MaxBy.
var InfiniteCell = triangulation.Simplex{Dim: triangulation.DimCell, ID: -1}

// Record is the introspection view of one classified simplex.
type Record struct {
	// Simplex addresses the simplex in the shape's triangulation.
	Simplex triangulation.Simplex

	// Key is the ascending input point indices; stable across kernels.
	Key []int

	// Interval is the classification interval.
	Interval Interval

	// MidBy and MaxBy are the cofaces defining Mid and Max; ties go to the
	// smallest coface in canonical order. A cell records itself; a hull
	// facet records InfiniteCell as MaxBy.
	MidBy triangulation.Simplex
	MaxBy triangulation.Simplex

	// Attached reports a coface vertex strictly inside the simplex's
	// orthogonal sphere; an attached simplex is never SINGULAR.
	Attached bool
}

// ClassifyAt returns the class of the record's simplex at alpha.
func (r Record) ClassifyAt(alpha float64) Class { return r.Interval.Classify(alpha) }

// Event is one classification change in the filtration.
type Event struct {
	// Alpha is the spectrum value (group representative) of the change.
	Alpha float64
	// Simplex changes class at Alpha.
	Simplex triangulation.Simplex
	// Class is the class from Alpha on.
	Class Class
}

// String renders e.g. "2.75 facet#3 REGULAR".
func (e Event) String() string {
	return fmt.Sprintf("%g %s %s", e.Alpha, e.Simplex, e.Class)
}

// validAlpha rejects negative and NaN α.
func validAlpha(op string, alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0 {
		return fmt.Errorf("%s(%g): %w", op, alpha, ErrNegativeAlpha)
	}

	return nil
}
