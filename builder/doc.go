// Package builder produces deterministic weighted point clouds for tests,
// examples and benchmarks of the triangulation and alphashape packages.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Cloud(bopts, cons...): resolves options and concatenates constructor output.
//     – Constructor:           a function appending points under a builderConfig.
//   - Constructors:
//     – PlatonicSolid(name, withCenter): the five solids, optional centre point.
//     – RandomCloud(n):       uniform in a cube (requires WithSeed/WithRand).
//     – Grid(nx, ny, nz):     regular lattice.
//     – SphereShell(n):       Fibonacci points on a sphere.
//     – Point(x, y, z, w):    one explicit point.
//   - Options (BuilderOption):
//     – WithSeed, WithRand:   RNG policy.
//     – WithScale, WithCenter: placement.
//     – WithWeightFn and the WithXWeight shorthands: per-point weights.
//     – WithCenterWeight:     weight of the PlatonicSolid centre.
//   - Weight distributions (WeightFn):
//     – DefaultWeightFn (0), ConstantWeightFn, UniformWeightFn,
//       NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order produce the
//     same points in the same order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinels (ErrTooFewPoints, ErrNeedRandSource,
//     ErrOptionViolation, ErrConstructFailed); check them with errors.Is.
package builder
