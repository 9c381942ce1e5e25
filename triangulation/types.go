package triangulation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/kernel"
)

// Sentinel errors for triangulation construction and lookups.
var (
	// ErrDegenerateInput indicates fewer than four points or no four affinely independent points.
	ErrDegenerateInput = errors.New("triangulation: degenerate input")

	// ErrInvalidCell indicates an externally supplied cell list that does not form a triangulation.
	ErrInvalidCell = errors.New("triangulation: invalid cell")

	// ErrInvalidSimplex indicates a simplex reference that does not exist in this triangulation.
	ErrInvalidSimplex = errors.New("triangulation: invalid simplex")

	// ErrNotRegular indicates a violated empty-orthogonal-sphere property (Validate).
	ErrNotRegular = errors.New("triangulation: not regular")
)

// Dim is the dimension of a simplex.
type Dim int

const (
	// DimVertex: 0-simplex.
	DimVertex Dim = iota
	// DimEdge: 1-simplex.
	DimEdge
	// DimFacet: 2-simplex (triangle).
	DimFacet
	// DimCell: 3-simplex (tetrahedron), the maximal simplices.
	DimCell
)

// NumDims is the number of simplex dimensions in 3D.
const NumDims = 4

// String returns the lower-case dimension name.
func (d Dim) String() string {
	switch d {
	case DimVertex:
		return "vertex"
	case DimEdge:
		return "edge"
	case DimFacet:
		return "facet"
	case DimCell:
		return "cell"
	default:
		return fmt.Sprintf("dim(%d)", int(d))
	}
}

// Simplex addresses one simplex of the arena.
type Simplex struct {
	Dim Dim
	ID  int
}

// String renders e.g. "facet#12".
func (s Simplex) String() string {
	return fmt.Sprintf("%s#%d", s.Dim, s.ID)
}

type vertexRec struct {
	point int   // input point index
	edges []int // incident edges, ascending
}

type edgeRec struct {
	v      [2]int // vertex IDs, ascending
	facets []int  // incident facets, ascending
}

type facetRec struct {
	v     [3]int // vertex IDs, ascending
	edges [3]int // edges[i] is the edge opposite v[i]
	cells [2]int // incident cells; cells[1] == noCell on the convex hull
}

type cellRec struct {
	v      [4]int // vertex IDs, ascending
	facets [4]int // facets[i] is the facet opposite v[i]
}

// noCell marks the infinite side of a convex-hull facet.
const noCell = -1

// Triangulation is the immutable arena. See the package documentation.
type Triangulation struct {
	points []geom.WeightedPoint
	kernel kernel.Kernel
	logger *slog.Logger

	vertices []vertexRec
	edges    []edgeRec
	facets   []facetRec
	cells    []cellRec

	pointToVertex []int // input point index → vertex ID, or -1 when hidden
	hidden        []int // hidden input point indices, ascending
}
