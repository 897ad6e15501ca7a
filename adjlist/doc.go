// Package adjlist offers an adjacency-list view of a dense adjacency
// matrix, with per-node out-neighbor sets backed by compressed bitsets.
//
// 🚀 What is it for?
//
//	The rotation search answers "does this structure occur anywhere in
//	that one?". Sometimes the question is stricter: "is every edge of A,
//	under the SAME labeling, also an edge of B?". adjlist holds one
//	bitset of out-neighbors per node, so that exact label-aligned
//	subset checks reduce to n superset tests on bit vectors.
//
// ✨ Key features:
//   - List: a slice of *bitset.BitSet, index = node, bits = out-neighbors
//   - FromDense: any nonzero matrix cell becomes a set bit
//   - SubsetOf: per-node subset tests, word-parallel via the bitset library
//   - OutDegree: popcount per node
//
// ⚙️ Usage:
//
//	la, err := adjlist.FromDense(a)
//	lb, err := adjlist.FromDense(b)
//	ok, err := la.SubsetOf(lb) // every edge of a present in b?
//
// Unlike the rotation search, no relabeling is attempted here: node i
// of one graph is compared with node i of the other, and differing
// node counts are an error (ErrSizeMismatch), not a verdict.
package adjlist
