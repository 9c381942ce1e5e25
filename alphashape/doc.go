// Package alphashape classifies the simplices of a 3D regular triangulation
// by the alpha parameter and answers queries over the resulting family of
// alpha complexes.
//
// What & Why
//
//	For every α ≥ 0 the alpha complex is a subcomplex of the regular
//	triangulation of the weighted points. Each simplex holds one of four
//	roles, ordered EXTERIOR < SINGULAR < REGULAR < INTERIOR, and its role
//	never decreases as α grows. A Shape stores for every simplex an Interval
//	{Entry, Mid, Max} so that any role lookup is O(1), and a Spectrum of all
//	critical values so that whole-complex questions are answered by sweeping.
//
// Intervals (R² is the squared radius of the smallest orthogonal sphere):
//
//	cell   Entry = Mid = Max = R²
//	facet  Mid/Max = smaller/larger α of its two cells (+Inf outside the hull)
//	edge   Mid = min Entry of its facets, Max = max Max of its facets
//	vertex Mid = min Entry of its edges,  Max = max Max of its edges
//
//	A non-cell is attached when a vertex of one of its cofaces has negative
//	power w.r.t. its orthogonal sphere; then Entry = Mid. Otherwise
//	Entry = min(R², Mid). In Regularized mode Entry = Mid for every non-cell.
//	Simplices on the convex hull have Max = +Inf and end REGULAR.
//
// Determinism
//
//	Ties between equal critical values are broken by the canonical simplex
//	order of the triangulation (dimension, then sorted input point indices).
//	The same point set yields the same records, spectrum and filtration with
//	any kernel whose predicates agree.
//
// Usage:
//
//	shape, err := alphashape.Build(ctx, points)
//	alpha := shape.FindAlphaSolid()
//	surface, _ := shape.BoundaryFacets(alpha)
//	for ev := range shape.Filtration() { ... }
//
// Errors:
//
//	ErrDegenerateInput  — fewer than four points, or no four affinely independent points.
//	ErrNegativeAlpha    — α < 0 or NaN; wraps ErrInvalidArgument.
//	ErrSimplexNotFound  — a simplex outside the shape's triangulation.
//	ErrOutOfRange       — a spectrum index outside [0, Len()).
//
// Build opens an OpenTelemetry span and logs phase summaries through log/slog
// at Debug level. A Shape is immutable after Build and safe for concurrent readers.
package alphashape
