package triangulation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/kernel"
)

// New wraps an externally computed triangulation of points given as cells of
// input point indices. Points referenced by no cell are reported as hidden.
//
// Validation (all failures wrap ErrInvalidCell unless noted):
//  1. points are finite (geom.ErrNonFinite) and at least four (ErrDegenerateInput);
//  2. there is at least one cell (ErrDegenerateInput);
//  3. every index is in range and the four indices of a cell are distinct;
//  4. no cell is flat under the configured kernel;
//  5. no cell is repeated and no facet is shared by more than two cells.
//
// New does not check the empty-sphere property; call Validate for that.
// Complexity: O(C log C) for C cells.
func New(points []geom.WeightedPoint, cells [][4]int, opts ...Option) (*Triangulation, error) {
	o := gatherOptions(opts...)
	if err := geom.ValidateAll(points); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if len(points) < 4 || len(cells) == 0 {
		return nil, fmt.Errorf("New: %d points, %d cells: %w", len(points), len(cells), ErrDegenerateInput)
	}

	for i, c := range cells {
		for j, p := range c {
			if p < 0 || p >= len(points) {
				return nil, fmt.Errorf("New: cell %d: index %d out of range: %w", i, p, ErrInvalidCell)
			}
			for _, q := range c[:j] {
				if p == q {
					return nil, fmt.Errorf("New: cell %d: repeated index %d: %w", i, p, ErrInvalidCell)
				}
			}
		}
		if o.Kernel.Orientation(points[c[0]].P, points[c[1]].P, points[c[2]].P, points[c[3]].P) == kernel.Zero {
			return nil, fmt.Errorf("New: cell %d %v is flat: %w", i, c, ErrInvalidCell)
		}
	}

	return assemble(points, cells, o)
}

// facetRef and edgeRef are the sort records used to deduplicate shared faces.
type facetRef struct {
	v    [3]int
	cell int
	idx  int
}

type edgeRef struct {
	v     [2]int
	facet int
	idx   int
}

// assemble builds the canonical arena from finite cells given as point indices.
//
// Steps:
//  1. Vertices = referenced points in ascending input order; the rest are hidden.
//  2. Cells are rewritten in vertex IDs, sorted internally and lexicographically.
//  3. Facets come from grouping the 4·C cell faces by vertex triple.
//  4. Edges come from grouping the 3·F facet sides by vertex pair.
//  5. Vertex → edge incidence is filled in ascending edge order.
func assemble(points []geom.WeightedPoint, cells [][4]int, o Options) (*Triangulation, error) {
	t := &Triangulation{
		points:        points,
		kernel:        o.Kernel,
		logger:        o.Logger,
		pointToVertex: make([]int, len(points)),
	}

	// 1. Vertices and hidden points.
	used := make([]bool, len(points))
	for _, c := range cells {
		for _, p := range c {
			used[p] = true
		}
	}
	for i := range points {
		if !used[i] {
			t.pointToVertex[i] = -1
			t.hidden = append(t.hidden, i)
			continue
		}
		t.pointToVertex[i] = len(t.vertices)
		t.vertices = append(t.vertices, vertexRec{point: i})
	}

	// 2. Cells.
	t.cells = make([]cellRec, len(cells))
	for i, c := range cells {
		v := [4]int{t.pointToVertex[c[0]], t.pointToVertex[c[1]], t.pointToVertex[c[2]], t.pointToVertex[c[3]]}
		sort.Ints(v[:])
		t.cells[i].v = v
	}
	sort.Slice(t.cells, func(i, j int) bool { return lessInts(t.cells[i].v[:], t.cells[j].v[:]) })
	for i := 1; i < len(t.cells); i++ {
		if t.cells[i].v == t.cells[i-1].v {
			return nil, fmt.Errorf("assemble: cell %v repeated: %w", t.cells[i].v, ErrInvalidCell)
		}
	}

	// 3. Facets.
	frefs := make([]facetRef, 0, 4*len(t.cells))
	for ci, c := range t.cells {
		for i := 0; i < 4; i++ {
			frefs = append(frefs, facetRef{v: drop4(c.v, i), cell: ci, idx: i})
		}
	}
	sort.Slice(frefs, func(i, j int) bool {
		if frefs[i].v != frefs[j].v {
			return lessInts(frefs[i].v[:], frefs[j].v[:])
		}
		return frefs[i].cell < frefs[j].cell
	})
	for j := 0; j < len(frefs); {
		k := j
		for k < len(frefs) && frefs[k].v == frefs[j].v {
			k++
		}
		if k-j > 2 {
			return nil, fmt.Errorf("assemble: facet %v shared by %d cells: %w", frefs[j].v, k-j, ErrInvalidCell)
		}
		f := facetRec{v: frefs[j].v, cells: [2]int{frefs[j].cell, noCell}}
		if k-j == 2 {
			f.cells[1] = frefs[j+1].cell
		}
		fid := len(t.facets)
		for r := j; r < k; r++ {
			t.cells[frefs[r].cell].facets[frefs[r].idx] = fid
		}
		t.facets = append(t.facets, f)
		j = k
	}

	// 4. Edges.
	erefs := make([]edgeRef, 0, 3*len(t.facets))
	for fi, f := range t.facets {
		for i := 0; i < 3; i++ {
			erefs = append(erefs, edgeRef{v: drop3(f.v, i), facet: fi, idx: i})
		}
	}
	sort.Slice(erefs, func(i, j int) bool {
		if erefs[i].v != erefs[j].v {
			return lessInts(erefs[i].v[:], erefs[j].v[:])
		}
		return erefs[i].facet < erefs[j].facet
	})
	for j := 0; j < len(erefs); {
		k := j
		e := edgeRec{v: erefs[j].v}
		eid := len(t.edges)
		for ; k < len(erefs) && erefs[k].v == erefs[j].v; k++ {
			e.facets = append(e.facets, erefs[k].facet)
			t.facets[erefs[k].facet].edges[erefs[k].idx] = eid
		}
		t.edges = append(t.edges, e)
		j = k
	}

	// 5. Vertex → edges.
	for eid, e := range t.edges {
		t.vertices[e.v[0]].edges = append(t.vertices[e.v[0]].edges, eid)
		t.vertices[e.v[1]].edges = append(t.vertices[e.v[1]].edges, eid)
	}

	return t, nil
}

// drop4 returns v without its i-th entry (order preserved).
func drop4(v [4]int, i int) [3]int {
	var out [3]int
	n := 0
	for j, x := range v {
		if j != i {
			out[n] = x
			n++
		}
	}

	return out
}

// drop3 returns v without its i-th entry (order preserved).
func drop3(v [3]int, i int) [2]int {
	var out [2]int
	n := 0
	for j, x := range v {
		if j != i {
			out[n] = x
			n++
		}
	}

	return out
}

// lessInts compares equal-length int slices lexicographically.
func lessInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
