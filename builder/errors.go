// SPDX-License-Identifier: MIT
// Package: alpha3/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewPoints indicates a size parameter (n, nx, ny, nz) below the
// constructor's minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a constructor parameter outside its domain,
// e.g. an unknown Platonic solid or a non-finite explicit point.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates that the cloud could not be produced: a nil
// constructor or a generated point that is not finite.
var ErrConstructFailed = errors.New("builder: construction failed")
