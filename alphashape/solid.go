package alphashape

import (
	"fmt"

	"github.com/katalvlaran/alpha3/dsu"
	"github.com/katalvlaran/alpha3/triangulation"
)

// sweep replays the filtration once, in order, and records for every spectrum
// index the number of solid components, plus the index of alpha_solid.
//
// Two union-find forests are maintained:
//   - vertices, merged when an edge reaches REGULAR or INTERIOR;
//   - cells, merged when a facet reaches INTERIOR (both its cells are then interior).
func (s *Shape) sweep() {
	sp := s.spectrum
	nv := s.tri.NumSimplices(triangulation.DimVertex)
	var cls [triangulation.NumDims][]Class
	for d := range cls {
		cls[d] = make([]Class, s.tri.NumSimplices(triangulation.Dim(d)))
	}

	verts := dsu.New(nv)
	cells := dsu.New(s.tri.NumSimplices(triangulation.DimCell))
	singular, exterior, vertexUnions := 0, nv, 0
	solidCells, cellUnions := 0, 0

	s.solid = make([]int, sp.Len())
	s.solidGroup, s.coverGroup = -1, -1
	for g := 0; g < sp.Len(); g++ {
		for _, ev := range sp.events[sp.offsets[g]:sp.offsets[g+1]] {
			smp := ev.Simplex
			old := cls[smp.Dim][smp.ID]
			cls[smp.Dim][smp.ID] = ev.Class
			if old == Singular {
				singular--
			}
			if ev.Class == Singular {
				singular++
			}

			switch smp.Dim {
			case triangulation.DimVertex:
				if old == Exterior {
					exterior--
				}
			case triangulation.DimEdge:
				if old < Regular && ev.Class >= Regular {
					v := s.tri.Vertices(smp)
					if verts.Union(v[0], v[1]) {
						vertexUnions++
					}
				}
			case triangulation.DimFacet:
				if ev.Class == Interior {
					c0, c1 := s.tri.FacetCells(smp.ID)
					if cells.Union(c0, c1) {
						cellUnions++
					}
				}
			case triangulation.DimCell:
				if ev.Class == Interior {
					solidCells++
				}
			}
		}

		s.solid[g] = solidCells - cellUnions
		if s.coverGroup < 0 && singular == 0 && exterior == 0 {
			s.coverGroup = g
		}
		if s.solidGroup < 0 && singular == 0 && exterior == 0 && nv-vertexUnions == 1 && s.solid[g] == 1 {
			s.solidGroup = g
		}
	}
	if s.solidGroup < 0 {
		// Unreachable for a valid triangulation: past the last value every
		// simplex is REGULAR or INTERIOR, the 1-skeleton is connected and all
		// cells are glued into one solid.
		s.solidGroup = sp.Len() - 1
	}
	if s.coverGroup < 0 {
		s.coverGroup = s.solidGroup
	}
}

// FindAlphaSolid returns the smallest critical α at which no simplex is
// SINGULAR, no vertex is EXTERIOR, the complex is connected and its INTERIOR
// cells form exactly one solid component. Hidden points are not vertices and
// are not required to be covered.
func (s *Shape) FindAlphaSolid() float64 {
	return s.spectrum.alphas[s.solidGroup]
}

// NumberOfSolidComponents counts the connected components of the INTERIOR
// cells at alpha, two cells being connected through an INTERIOR facet.
func (s *Shape) NumberOfSolidComponents(alpha float64) (int, error) {
	if err := validAlpha("NumberOfSolidComponents", alpha); err != nil {
		return 0, err
	}
	g := s.spectrum.floor(alpha)
	if g < 0 {
		return 0, nil
	}

	return s.solid[g], nil
}

// FindOptimalAlpha returns the smallest critical α at which no simplex is
// SINGULAR, no vertex is EXTERIOR and the INTERIOR cells form between 1 and n
// solid components. Unlike FindAlphaSolid it does not require the vertices to
// be connected, so FindOptimalAlpha(1) ≤ FindAlphaSolid(). n < 1 wraps
// ErrInvalidArgument.
func (s *Shape) FindOptimalAlpha(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("FindOptimalAlpha(%d): %w", n, ErrInvalidArgument)
	}
	for g := s.coverGroup; g < len(s.solid); g++ {
		if s.solid[g] >= 1 && s.solid[g] <= n {
			return s.spectrum.alphas[g], nil
		}
	}

	// All cells are interior and glued at the last critical value.
	return s.spectrum.alphas[len(s.solid)-1], nil
}
