// Package signature encodes the columns of a dense adjacency matrix into
// integers that survive rotation: each value carries both the column's bit
// pattern and its position.
//
// 🚀 What is a column signature?
//
//	For column c of an n×n matrix, with any nonzero entry read as 1:
//	  rowPart = Σ 2^i  over rows i with a nonzero entry (the column's bit
//	            pattern read as a binary number, 0 ≤ rowPart < 2^n)
//	  colPart = c·2^n  (a disjoint numeric band per column position)
//	  signature = rowPart + colPart
//
//	Because colPart strictly exceeds any possible rowPart, two columns of
//	the same matrix can never collide — even when their bit patterns are
//	identical, their bands differ by (c2−c1)·2^n.
//
// ✨ Key properties:
//   - pairwise-distinct signatures for every n×n input (proof by bands)
//   - positional part is removable: signature mod 2^n recovers rowPart,
//     which is what the rotation search compares across shifted positions
//   - math/big storage: magnitude grows as O(n·2^n), so there is no bound
//     on the node count and no silent overflow
//
// ⚙️ Usage:
//
//	sigs, err := signature.Encode(m)       // one *big.Int per column
//	rows, err := signature.RowSignatures(sigs) // stripped, rotation-ready
//
// Performance:
//
//   - Encode: O(n²) entry reads, O(n) big.Int allocations
//   - RowSignatures: O(n) reductions mod 2^n
//
// The encoder fails fast on nil or non-square input (matrix.ErrNilMatrix,
// matrix.ErrNonSquare); see the contain package for the full pipeline.
package signature
