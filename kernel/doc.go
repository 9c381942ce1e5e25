// Package kernel provides the numeric predicates the alpha shape engine relies on.
//
// What & Why
//
//	Every combinatorial decision in a regular triangulation and in the alpha
//	classification reduces to the sign of one of two quantities:
//
//	  • orientation(a,b,c,d) = det[b−a; c−a; d−a]
//	  • power(q, S)          = |q − c_S|² − w_q − R²_S
//
//	where (c_S, R²_S) is the smallest sphere orthogonal (in the power sense)
//	to every weighted point of the simplex S. The kernel also constructs the
//	squared radius R²_S itself, which becomes the critical α value of S.
//
// Back ends
//
//   - Inexact  — plain float64. Orthogonal spheres are solved from the Gram
//     system of the simplex with a gonum Cholesky factorization.
//   - Exact    — math/big.Rat throughout; every predicate sign is exact and
//     radii are rounded to the nearest float64 at the very end.
//   - Filtered — float64 predicates first; uncertain signs are recomputed with
//     Exact. Orientation uses Shewchuk's proven orient3d bound. Power tests use
//     a condition-scaled relative estimate (FilterEpsilon), which is
//     conservative in practice but not a proof. Radii are always the correctly
//     rounded Exact values, so Filtered and Exact report identical critical values.
//
// Orthogonal sphere of k = 1..4 weighted points p_0..p_{k−1}
//
//	d_i = p_i − p_0,   G_ij = d_i·d_j,   b_i = (|d_i|² − w_i + w_0) / 2
//	G·λ = b,           c = p_0 + Σ λ_i d_i,   R² = |c − p_0|² − w_0
//
// Affinely dependent inputs make G singular: SquaredRadius reports
// ErrDegenerateSimplex, PowerTest panics with ErrPredicateInconsistency
// (callers only ever ask about simplices of a valid triangulation).
//
// Kernels are stateless apart from Filtered's fallback counter and are safe for
// concurrent use.
package kernel
