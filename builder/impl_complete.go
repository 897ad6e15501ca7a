// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Emits every edge i → j with i ≠ j; the diagonal stays zero.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n²).
//   - Space: the returned n×n matrix.
//
// Determinism:
//   - Equal n ⇒ identical matrices.

package builder

import (
	"fmt"

	"github.com/hjstephan/subgraph/matrix"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete directed
// graph K_n without self-loops.
func Complete(n int) Constructor {
	return func() (*matrix.Dense, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}

		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := m.Set(i, j, 1); err != nil {
					return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return m, nil
	}
}
