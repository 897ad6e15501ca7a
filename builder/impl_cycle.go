// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Emits edges i → (i+1) mod n for i = 0..n-1.
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
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func() (*matrix.Dense, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			if err := m.Set(i, (i+1)%n, 1); err != nil {
				return nil, fmt.Errorf("%s: Set(%d,%d): %w", methodCycle, i, (i+1)%n, err)
			}
		}

		return m, nil
	}
}
