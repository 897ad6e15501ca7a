// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// doc.go - package overview.
//
// Package builder provides deterministic constructors for the adjacency
// matrices of standard directed topologies: paths, cycles, complete
// graphs, stars, and edgeless graphs. Constructors are closures so that
// fixtures, benchmarks, and demos can declare a topology once and build
// it on demand.
//
// Design contract (strict):
//   - Constructor is a nullary closure returning a fresh *matrix.Dense.
//   - Every invocation allocates a new matrix; constructors never share
//     or cache state.
//   - Parameters are validated inside the closure, returning sentinel
//     errors (ErrTooFewNodes) with a method-tagged context; never panic.
//   - Determinism: the same constructor always produces the same matrix.
//   - WithEdges decorates any Constructor with extra directed edges,
//     enabling "named topology plus chords" fixtures.
//
// Usage:
//
//	m, err := builder.Path(4)()                    // 0→1→2→3
//	b, err := builder.WithEdges(builder.Path(4),
//	    builder.Edge{From: 0, To: 2})()            // path plus chord
//
// Errors:
//   - ErrTooFewNodes      parameter below the topology's minimum.
//   - ErrConstructFailed  nil base constructor handed to WithEdges.
//   - matrix sentinels    out-of-range edge endpoints, wrapped via %w.
package builder
