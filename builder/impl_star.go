// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Node 0 is the hub; emits edges 0 → i for i = 1..n-1.
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
	methodStar   = "Star"
	minStarNodes = 2
	hubIndex     = 0
)

// Star returns a Constructor that builds the out-directed star S_n:
// one hub at index 0 with n-1 leaves.
func Star(n int) Constructor {
	return func() (*matrix.Dense, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			if err := m.Set(hubIndex, i, 1); err != nil {
				return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodStar, hubIndex, i, err)
			}
		}

		return m, nil
	}
}
