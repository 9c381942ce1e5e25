package triangulation

import (
	"fmt"

	"github.com/katalvlaran/alpha3/kernel"
)

// Validate checks the arena and the regular property.
//
// Checks, in order:
//  1. Euler characteristic V − E + F − C = 1 (a triangulated 3-ball);
//  2. no cell is flat under the kernel;
//  3. the two cells of an interior facet lie on opposite sides of it;
//  4. no vertex has negative power w.r.t. the orthogonal sphere of a cell
//     (ErrNotRegular).
//
// Complexity: O(V·C); intended for tests and debugging.
func (t *Triangulation) Validate() error {
	v, e, f, c := len(t.vertices), len(t.edges), len(t.facets), len(t.cells)
	if chi := v - e + f - c; chi != 1 {
		return fmt.Errorf("Validate: Euler characteristic %d (V=%d E=%d F=%d C=%d): %w", chi, v, e, f, c, ErrInvalidCell)
	}

	for cid, rec := range t.cells {
		p := t.WeightedPoints(Simplex{Dim: DimCell, ID: cid})
		if t.kernel.Orientation(p[0].P, p[1].P, p[2].P, p[3].P) == kernel.Zero {
			return fmt.Errorf("Validate: cell#%d %v is flat: %w", cid, rec.v, ErrInvalidCell)
		}
	}

	for fid, rec := range t.facets {
		if rec.cells[1] == noCell {
			continue
		}
		a, b, c := t.Point(rec.v[0]).P, t.Point(rec.v[1]).P, t.Point(rec.v[2]).P
		s0 := t.kernel.Orientation(a, b, c, t.Point(t.apex(rec.cells[0], fid)).P)
		s1 := t.kernel.Orientation(a, b, c, t.Point(t.apex(rec.cells[1], fid)).P)
		if s0 == s1 {
			return fmt.Errorf("Validate: cells of facet#%d overlap: %w", fid, ErrInvalidCell)
		}
	}

	for cid, rec := range t.cells {
		cell := Simplex{Dim: DimCell, ID: cid}
		for vid := range t.vertices {
			if vid == rec.v[0] || vid == rec.v[1] || vid == rec.v[2] || vid == rec.v[3] {
				continue
			}
			if t.PowerTest(vid, cell) == kernel.Negative {
				return fmt.Errorf("Validate: vertex %d inside the orthogonal sphere of %s: %w", vid, cell, ErrNotRegular)
			}
		}
	}

	return nil
}

// apex returns the vertex of cell cid opposite facet fid.
func (t *Triangulation) apex(cid, fid int) int {
	rec := t.cells[cid]
	for i, f := range rec.facets {
		if f == fid {
			return rec.v[i]
		}
	}

	return rec.v[0]
}
