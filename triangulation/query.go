package triangulation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/alpha3/geom"
	"github.com/katalvlaran/alpha3/kernel"
)

// Points returns the input points (including hidden ones). The slice is shared; do not modify it.
func (t *Triangulation) Points() []geom.WeightedPoint { return t.points }

// Kernel returns the numeric kernel bound at construction.
func (t *Triangulation) Kernel() kernel.Kernel { return t.kernel }

// Hidden returns the ascending input indices of points that are not vertices.
func (t *Triangulation) Hidden() []int {
	out := make([]int, len(t.hidden))
	copy(out, t.hidden)

	return out
}

// NumSimplices returns the number of finite simplices of dimension d.
func (t *Triangulation) NumSimplices(d Dim) int {
	switch d {
	case DimVertex:
		return len(t.vertices)
	case DimEdge:
		return len(t.edges)
	case DimFacet:
		return len(t.facets)
	case DimCell:
		return len(t.cells)
	default:
		return 0
	}
}

// Total returns the number of finite simplices of every dimension.
func (t *Triangulation) Total() int {
	return len(t.vertices) + len(t.edges) + len(t.facets) + len(t.cells)
}

// Simplices returns every simplex of dimension d in arena order.
func (t *Triangulation) Simplices(d Dim) []Simplex {
	n := t.NumSimplices(d)
	out := make([]Simplex, n)
	for i := range out {
		out[i] = Simplex{Dim: d, ID: i}
	}

	return out
}

// Contains reports whether s addresses a simplex of this triangulation.
func (t *Triangulation) Contains(s Simplex) bool {
	return s.ID >= 0 && s.ID < t.NumSimplices(s.Dim)
}

// Vertices returns the ascending vertex IDs of s (s itself for a vertex).
// s must satisfy Contains.
func (t *Triangulation) Vertices(s Simplex) []int {
	switch s.Dim {
	case DimVertex:
		return []int{s.ID}
	case DimEdge:
		v := t.edges[s.ID].v
		return v[:]
	case DimFacet:
		v := t.facets[s.ID].v
		return v[:]
	default:
		v := t.cells[s.ID].v
		return v[:]
	}
}

// PointIndex returns the input point index of vertex v.
func (t *Triangulation) PointIndex(v int) int { return t.vertices[v].point }

// Point returns the weighted point of vertex v.
func (t *Triangulation) Point(v int) geom.WeightedPoint { return t.points[t.vertices[v].point] }

// VertexOf returns the vertex ID of an input point, or false when it is hidden or out of range.
func (t *Triangulation) VertexOf(point int) (int, bool) {
	if point < 0 || point >= len(t.pointToVertex) || t.pointToVertex[point] < 0 {
		return 0, false
	}

	return t.pointToVertex[point], true
}

// Key returns the ascending input point indices of s; it identifies s across
// triangulations of the same point set.
func (t *Triangulation) Key(s Simplex) []int {
	vs := t.Vertices(s)
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = t.vertices[v].point
	}

	return out
}

// WeightedPoints returns the points spanning s, in vertex order.
func (t *Triangulation) WeightedPoints(s Simplex) []geom.WeightedPoint {
	vs := t.Vertices(s)
	out := make([]geom.WeightedPoint, len(vs))
	for i, v := range vs {
		out[i] = t.Point(v)
	}

	return out
}

// Less is the canonical total order: by dimension, then lexicographically by
// vertex IDs (equivalently by Key, since vertex IDs ascend with point index).
func (t *Triangulation) Less(a, b Simplex) bool {
	if a.Dim != b.Dim {
		return a.Dim < b.Dim
	}
	// Arena IDs of one dimension are already in lexicographic vertex order.
	return a.ID < b.ID
}

// Cofaces returns the finite simplices of dimension s.Dim+1 containing s, in
// arena order. A cell has no cofaces; a hull facet has exactly one.
func (t *Triangulation) Cofaces(s Simplex) []Simplex {
	var out []Simplex
	switch s.Dim {
	case DimVertex:
		for _, e := range t.vertices[s.ID].edges {
			out = append(out, Simplex{Dim: DimEdge, ID: e})
		}
	case DimEdge:
		for _, f := range t.edges[s.ID].facets {
			out = append(out, Simplex{Dim: DimFacet, ID: f})
		}
	case DimFacet:
		for _, c := range t.facets[s.ID].cells {
			if c != noCell {
				out = append(out, Simplex{Dim: DimCell, ID: c})
			}
		}
	}

	return out
}

// Faces returns the simplices of dimension s.Dim−1 on the boundary of s, in
// arena order. A vertex has no faces.
func (t *Triangulation) Faces(s Simplex) []Simplex {
	var ids []int
	var d Dim
	switch s.Dim {
	case DimEdge:
		v := t.edges[s.ID].v
		ids, d = v[:], DimVertex
	case DimFacet:
		e := t.facets[s.ID].edges
		ids, d = e[:], DimEdge
	case DimCell:
		f := t.cells[s.ID].facets
		ids, d = f[:], DimFacet
	default:
		return nil
	}
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	out := make([]Simplex, len(sorted))
	for i, id := range sorted {
		out[i] = Simplex{Dim: d, ID: id}
	}

	return out
}

// FacetCells returns the two cells of facet f; c1 is -1 for a convex-hull facet.
func (t *Triangulation) FacetCells(f int) (c0, c1 int) {
	cs := t.facets[f].cells

	return cs[0], cs[1]
}

// OnHull reports whether s lies on the convex hull (has an infinite coface).
// Cells are never on the hull.
func (t *Triangulation) OnHull(s Simplex) bool {
	switch s.Dim {
	case DimFacet:
		return t.facets[s.ID].cells[1] == noCell
	case DimEdge:
		for _, f := range t.edges[s.ID].facets {
			if t.facets[f].cells[1] == noCell {
				return true
			}
		}
	case DimVertex:
		for _, e := range t.vertices[s.ID].edges {
			if t.OnHull(Simplex{Dim: DimEdge, ID: e}) {
				return true
			}
		}
	}

	return false
}

// Opposite returns the vertices of coface that are not vertices of s.
func (t *Triangulation) Opposite(s, coface Simplex) []int {
	in := t.Vertices(s)
	var out []int
	for _, v := range t.Vertices(coface) {
		found := false
		for _, w := range in {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}

	return out
}

// Neighbors returns the vertices sharing an edge with v, ascending.
func (t *Triangulation) Neighbors(v int) []int {
	out := make([]int, 0, len(t.vertices[v].edges))
	for _, e := range t.vertices[v].edges {
		ev := t.edges[e].v
		if ev[0] == v {
			out = append(out, ev[1])
		} else {
			out = append(out, ev[0])
		}
	}
	sort.Ints(out)

	return out
}

// Find resolves the simplex spanned by the given input point indices
// (1..4 distinct indices, any order). ErrInvalidSimplex if it does not exist.
func (t *Triangulation) Find(points ...int) (Simplex, error) {
	if len(points) < 1 || len(points) > 4 {
		return Simplex{}, fmt.Errorf("Find(%v): %w", points, ErrInvalidSimplex)
	}
	vs := make([]int, len(points))
	for i, p := range points {
		v, ok := t.VertexOf(p)
		if !ok {
			return Simplex{}, fmt.Errorf("Find(%v): point %d is not a vertex: %w", points, p, ErrInvalidSimplex)
		}
		vs[i] = v
	}
	sort.Ints(vs)

	// Descend from the first vertex through incidences, matching vertex sets.
	cur := Simplex{Dim: DimVertex, ID: vs[0]}
	for d := 1; d < len(vs); d++ {
		next, ok := Simplex{}, false
		for _, cf := range t.Cofaces(cur) {
			if equalInts(t.Vertices(cf), vs[:d+1]) {
				next, ok = cf, true
				break
			}
		}
		if !ok {
			return Simplex{}, fmt.Errorf("Find(%v): %w", points, ErrInvalidSimplex)
		}
		cur = next
	}

	return cur, nil
}

// OrthogonalSquaredRadius returns R² of the smallest sphere orthogonal to every point of s.
func (t *Triangulation) OrthogonalSquaredRadius(s Simplex) (float64, error) {
	r2, err := t.kernel.SquaredRadius(t.WeightedPoints(s))
	if err != nil {
		return 0, fmt.Errorf("OrthogonalSquaredRadius(%s): %w", s, err)
	}

	return r2, nil
}

// PowerTest returns the sign of the power of vertex v w.r.t. the smallest
// orthogonal sphere of s. Negative: v is attached to s (strictly inside).
func (t *Triangulation) PowerTest(v int, s Simplex) kernel.Sign {
	return t.kernel.PowerTest(t.WeightedPoints(s), t.Point(v))
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
