// Package alpha3 computes weighted alpha shapes of 3D point sets: the regular
// (weighted Delaunay) triangulation of the points, the role of every simplex
// as a function of α, and the global queries built on top of it.
//
// 🚀 What is alpha3?
//
//	A pure-Go library that brings together:
//		• Geometry: weighted points and power distance (geom/)
//		• Kernels: inexact, exact (math/big) and filtered predicates (kernel/)
//		• Triangulation: Bowyer–Watson regular triangulation as an index arena (triangulation/)
//		• Classification: per-simplex α intervals, spectrum, filtration (alphashape/)
//		• Union–find used by the solid sweep (dsu/)
//		• Point-set builders for tests and benchmarks (builder/)
//
// ✨ Why alpha3?
//
//   - Deterministic – one canonical simplex order, independent of kernel and parallelism
//   - Monotone – a simplex only moves up EXTERIOR < SINGULAR < REGULAR < INTERIOR
//   - Kernel-agnostic – a narrow predicate interface, swappable per build
//
// Data flows one way:
//
//	points ─► triangulation ─► classifier ─► spectrum ─► queries
//
// Quick example:
//
//	pts, _ := builder.Cloud(nil, builder.PlatonicSolid(builder.Tetrahedron, true))
//	shape, _ := alphashape.Build(ctx, pts)
//	surface, _ := shape.BoundaryFacets(shape.FindAlphaSolid())
//
//	go get github.com/katalvlaran/alpha3
package alpha3
