package alphashape

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/alpha3/kernel"
	"github.com/katalvlaran/alpha3/triangulation"
	"golang.org/x/sync/errgroup"
)

// classifier derives the interval of every simplex, top dimension first.
// Each pass reads only the records of the pass before it and writes one slot
// per simplex, so simplices of one dimension are processed in parallel.
type classifier struct {
	tri     *triangulation.Triangulation
	mode    Mode
	workers int
	recs    [triangulation.NumDims][]Record
}

func (c *classifier) run(ctx context.Context) error {
	for d := triangulation.DimCell; d >= triangulation.DimVertex; d-- {
		n := c.tri.NumSimplices(d)
		c.recs[d] = make([]Record, n)
		var step func(id int) error
		switch d {
		case triangulation.DimCell:
			step = c.cell
		case triangulation.DimFacet:
			step = c.facet
		default:
			step = func(id int) error { return c.lower(d, id) }
		}
		if err := parallelFor(ctx, n, c.workers, step); err != nil {
			return err
		}
	}

	return nil
}

// parallelFor runs fn over [0, n) in at most workers contiguous chunks,
// checking ctx between items.
func parallelFor(ctx context.Context, n, workers int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// cell: Entry = Mid = Max = R².
func (c *classifier) cell(id int) error {
	s := triangulation.Simplex{Dim: triangulation.DimCell, ID: id}
	r2, err := c.tri.OrthogonalSquaredRadius(s)
	if err != nil {
		return fmt.Errorf("classify %s: %w", s, err)
	}
	c.recs[triangulation.DimCell][id] = Record{
		Simplex:  s,
		Key:      c.tri.Key(s),
		Interval: Interval{Entry: r2, Mid: r2, Max: r2},
		MidBy:    s,
		MaxBy:    s,
	}

	return nil
}

// facet: Mid and Max are the smaller and larger α of the two cells, the
// infinite side counting as +Inf.
func (c *classifier) facet(id int) error {
	s := triangulation.Simplex{Dim: triangulation.DimFacet, ID: id}
	cells := c.recs[triangulation.DimCell]
	c0, c1 := c.tri.FacetCells(id)
	rec := Record{Simplex: s, Key: c.tri.Key(s)}

	a0 := cells[c0].Interval.Max
	b0 := triangulation.Simplex{Dim: triangulation.DimCell, ID: c0}
	if c1 < 0 {
		rec.Interval.Mid, rec.MidBy = a0, b0
		rec.Interval.Max, rec.MaxBy = math.Inf(1), InfiniteCell
	} else {
		// c0 < c1 in arena order, so c0 wins ties on both ends.
		a1 := cells[c1].Interval.Max
		b1 := triangulation.Simplex{Dim: triangulation.DimCell, ID: c1}
		rec.Interval.Mid, rec.MidBy = a0, b0
		rec.Interval.Max, rec.MaxBy = a0, b0
		if a1 < a0 {
			rec.Interval.Mid, rec.MidBy = a1, b1
		}
		if a1 > a0 {
			rec.Interval.Max, rec.MaxBy = a1, b1
		}
	}

	if err := c.entry(&rec); err != nil {
		return err
	}
	c.recs[triangulation.DimFacet][id] = rec

	return nil
}

// lower handles edges and vertices: Mid is the smallest Entry and Max the
// largest Max over the cofaces one dimension up.
func (c *classifier) lower(d triangulation.Dim, id int) error {
	s := triangulation.Simplex{Dim: d, ID: id}
	up := c.recs[d+1]
	rec := Record{Simplex: s, Key: c.tri.Key(s)}
	rec.Interval.Mid, rec.Interval.Max = math.Inf(1), math.Inf(-1)
	for _, cf := range c.tri.Cofaces(s) {
		iv := up[cf.ID].Interval
		if iv.Entry < rec.Interval.Mid {
			rec.Interval.Mid, rec.MidBy = iv.Entry, cf
		}
		if iv.Max > rec.Interval.Max {
			rec.Interval.Max, rec.MaxBy = iv.Max, cf
		}
	}
	if err := c.entry(&rec); err != nil {
		return err
	}
	c.recs[d][id] = rec

	return nil
}

// entry sets the attachment flag and Entry of a non-cell whose Mid is known.
// An attached simplex enters together with its coface (Entry = Mid); a free
// one enters at its own orthogonal radius when that comes first.
func (c *classifier) entry(rec *Record) error {
	s := rec.Simplex
	rec.Attached = c.attached(s)
	if rec.Attached || c.mode == Regularized {
		rec.Interval.Entry = rec.Interval.Mid
		return nil
	}
	r2, err := c.tri.OrthogonalSquaredRadius(s)
	if err != nil {
		return fmt.Errorf("classify %s: %w", s, err)
	}
	rec.Interval.Entry = math.Min(r2, rec.Interval.Mid)

	return nil
}

// attached reports whether a vertex of some coface, not in s, has negative
// power w.r.t. the orthogonal sphere of s.
func (c *classifier) attached(s triangulation.Simplex) bool {
	for _, cf := range c.tri.Cofaces(s) {
		for _, v := range c.tri.Opposite(s, cf) {
			if c.tri.PowerTest(v, s) == kernel.Negative {
				return true
			}
		}
	}

	return false
}
