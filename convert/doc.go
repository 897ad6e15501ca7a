// SPDX-License-Identifier: MIT

// Package convert bridges the dense adjacency matrices of this module
// with the gonum ecosystem, in both directions:
//
//   - FromDirected / ToDirected exchange matrices with gonum graph
//     values (graph.Directed, simple.DirectedGraph), so graphs built or
//     analyzed with gonum algorithms can enter the containment pipeline
//     and vice versa.
//   - FromMat / ToMat exchange matrices with gonum/mat dense matrices,
//     preserving cell values exactly.
//
// Graph conversions are binary: any nonzero cell is an edge of weight
// one, matching the containment semantics where magnitude carries no
// meaning. Matrix conversions keep values untouched.
//
// Two representability gaps are surfaced as sentinels instead of
// panicking inside gonum:
//
//   - ErrSelfLoop: simple.DirectedGraph cannot hold self-edges, so a
//     nonzero diagonal cell rejects ToDirected.
//   - ErrEmptyMatrix: gonum/mat cannot represent 0×0 matrices, so the
//     legal empty adjacency matrix rejects ToMat.
//
// Node IDs are mapped to row indices by ascending ID, making every
// conversion deterministic; FromDirected returns the ID → index map it
// used.
package convert
