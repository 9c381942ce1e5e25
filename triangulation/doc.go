// Package triangulation is a read-only arena view over a 3D regular (weighted
// Delaunay) triangulation, together with a reference builder.
//
// What & Why
//
//	Alpha shapes are defined over the regular triangulation of the weighted
//	points: the triangulation whose cells have empty orthogonal spheres in the
//	power sense. The alpha engine never mutates it; it only enumerates
//	simplices, walks incidences and asks two geometric questions:
//
//	  • OrthogonalSquaredRadius(s) — R² of the smallest sphere orthogonal to s
//	  • PowerTest(v, s)            — sign of the power of vertex v w.r.t. that sphere
//
// Arena
//
//	Simplices live in four slices (vertices, edges, facets, cells) and are
//	addressed by Simplex{Dim, ID}. Incidence is stored as index lists, so
//	there are no pointer cycles. Ordering is canonical and independent of how
//	the triangulation was produced:
//
//	  • vertices ascend by input point index;
//	  • edges, facets and cells ascend lexicographically by their sorted vertex IDs.
//
//	Less(a, b) exposes this order; it is the tie-break used everywhere
//	downstream so results are reproducible across kernels and runs.
//
// Construction
//
//   - Build(points, opts...) — incremental Bowyer–Watson for regular
//     triangulations with a symbolic infinite vertex. Points that end up with
//     an empty power cell (duplicates, points dominated by heavier neighbours)
//     are hidden: they are reported by Hidden() and are not vertices.
//   - New(points, cells, opts...) — wraps a triangulation computed elsewhere,
//     validating indices, orientation and facet manifoldness.
//
// Errors:
//
//	ErrDegenerateInput — fewer than four points, or all points coplanar/collinear/coincident.
//	ErrInvalidCell     — an externally supplied cell is out of range, repeated, flat or non-manifold.
//	ErrInvalidSimplex  — Find/Simplex lookups that do not resolve.
//	ErrNotRegular      — Validate found a vertex inside a cell's orthogonal sphere.
//
// Concurrency: a Triangulation is immutable after construction and safe for
// concurrent readers.
package triangulation
