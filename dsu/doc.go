// Package dsu provides a disjoint-set (union-find) structure over dense integer
// IDs with path compression and union by rank.
//
// It backs the sequential sweeps of the alpha spectrum: vertex connectivity in
// FindAlphaSolid and solid-cell components in NumberOfSolidComponents /
// FindOptimalAlpha.
//
// Complexity: Find and Union run in O(α(n)) amortized, α being the inverse
// Ackermann function. Memory: O(n).
//
// A DSU is not safe for concurrent mutation.
package dsu
