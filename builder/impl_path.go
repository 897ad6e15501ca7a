// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Emits edges (i-1) → i for i = 1..n-1, nothing else.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n²) matrix allocation + O(n) edge writes.
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
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple directed path P_n.
func Path(n int) Constructor {
	// Return a closure capturing n; validation happens on invocation.
	return func() (*matrix.Dense, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}
		// Emit edges in stable increasing order.
		for i := 1; i < n; i++ {
			if err := m.Set(i-1, i, 1); err != nil {
				return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodPath, i-1, i, err)
			}
		}

		return m, nil
	}
}
