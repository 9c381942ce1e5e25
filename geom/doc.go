// Package geom defines the weighted point model shared by every alpha3 package.
//
// A weighted point p^(w) = (p, w) stands for the ball centred at p with squared
// radius w (w may be negative, giving an "imaginary" ball). Distances between
// weighted points are power distances, never plain Euclidean ones:
//
//	pow(p, q) = |p − q|² − w_p − w_q
//
// and the power of a bare location x with respect to p is |x − p|² − w_p.
//
// Coordinates are gonum r3.Vec values so that kernels, builders and callers
// can share vector arithmetic without conversion.
package geom
