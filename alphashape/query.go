package alphashape

import (
	"fmt"

	"github.com/katalvlaran/alpha3/triangulation"
)

// Triangulation returns the underlying triangulation.
func (s *Shape) Triangulation() *triangulation.Triangulation { return s.tri }

// Spectrum returns the critical-value index.
func (s *Shape) Spectrum() *Spectrum { return s.spectrum }

// Mode returns the classification mode.
func (s *Shape) Mode() Mode { return s.mode }

// Tolerance returns the relative merge tolerance of the spectrum.
func (s *Shape) Tolerance() float64 { return s.tol }

// Classify returns the class of simplex at alpha in O(1).
func (s *Shape) Classify(simplex triangulation.Simplex, alpha float64) (Class, error) {
	if err := validAlpha("Classify", alpha); err != nil {
		return Exterior, err
	}
	if !s.tri.Contains(simplex) {
		return Exterior, fmt.Errorf("Classify(%s): %w", simplex, ErrSimplexNotFound)
	}

	return s.recs[simplex.Dim][simplex.ID].Interval.Classify(alpha), nil
}

// Interval returns the classification interval of simplex.
func (s *Shape) Interval(simplex triangulation.Simplex) (Interval, error) {
	r, err := s.Record(simplex)

	return r.Interval, err
}

// Record returns the introspection record of simplex.
func (s *Shape) Record(simplex triangulation.Simplex) (Record, error) {
	if !s.tri.Contains(simplex) {
		return Record{}, fmt.Errorf("Record(%s): %w", simplex, ErrSimplexNotFound)
	}

	return s.recs[simplex.Dim][simplex.ID], nil
}

// Records returns every record by dimension, then arena order. Keys are shared
// with the shape; do not modify them.
func (s *Shape) Records() []Record {
	out := make([]Record, 0, s.tri.Total())
	for d := range s.recs {
		out = append(out, s.recs[d]...)
	}

	return out
}

// Simplices returns the simplices of dimension dim holding class c at alpha, in arena order.
func (s *Shape) Simplices(dim triangulation.Dim, c Class, alpha float64) ([]triangulation.Simplex, error) {
	if err := validAlpha("Simplices", alpha); err != nil {
		return nil, err
	}
	if dim < triangulation.DimVertex || dim > triangulation.DimCell {
		return nil, fmt.Errorf("Simplices: dimension %d: %w", dim, ErrInvalidArgument)
	}
	var out []triangulation.Simplex
	for _, r := range s.recs[dim] {
		if r.Interval.Classify(alpha) == c {
			out = append(out, r.Simplex)
		}
	}

	return out, nil
}

// BoundaryFacets returns the REGULAR facets at alpha: the surface of the shape.
func (s *Shape) BoundaryFacets(alpha float64) ([]triangulation.Simplex, error) {
	out, err := s.Simplices(triangulation.DimFacet, Regular, alpha)
	if err != nil {
		return nil, fmt.Errorf("BoundaryFacets: %w", err)
	}

	return out, nil
}

// Complex returns every simplex that is not EXTERIOR at alpha, by dimension
// then arena order.
func (s *Shape) Complex(alpha float64) ([]triangulation.Simplex, error) {
	if err := validAlpha("Complex", alpha); err != nil {
		return nil, err
	}
	var out []triangulation.Simplex
	for d := range s.recs {
		for _, r := range s.recs[d] {
			if r.Interval.Classify(alpha) != Exterior {
				out = append(out, r.Simplex)
			}
		}
	}

	return out, nil
}
