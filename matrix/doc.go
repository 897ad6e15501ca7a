// SPDX-License-Identifier: MIT

// Package matrix provides the dense adjacency-matrix representation used by
// every containment algorithm in this module.
//
// The matrix package provides:
//
//   - Dense, a row-major n×n (or r×c) float64 grid with bounds-checked
//     accessors; any nonzero entry is read as a directed edge by consumers.
//   - FromRows for building matrices from literal row slices.
//   - A unified set of sentinel errors (errors.go) and validators
//     (validators.go) shared by the signature, adjacency-list and
//     containment packages.
//
// A Dense value is never mutated by the algorithm packages: signatures,
// neighbor sets and decisions are all derived into fresh storage. Zero-sized
// matrices are legal — the empty graph is a valid, trivially-contained input
// for the rotation search.
//
// Matrices are best for dense or small graphs where O(n²) memory and build
// time are acceptable; that is exactly the regime the containment engine
// targets.
//
// See the examples in this package and contain for usage patterns.
package matrix
