// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// impl_empty.go - implementation of Empty(n).
//
// Contract:
//   - n ≥ 0 (else ErrTooFewNodes); n = 0 yields the legal 0×0 matrix.
//   - Emits no edges.
//   - Returns only sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n²) matrix allocation.
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
	methodEmpty   = "Empty"
	minEmptyNodes = 0
)

// Empty returns a Constructor that builds the edgeless graph on n
// nodes. The n = 0 case is deliberate: the empty structure is the
// neutral element of containment checks.
func Empty(n int) Constructor {
	return func() (*matrix.Dense, error) {
		if n < minEmptyNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewNodes)
		}

		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodEmpty, err)
		}

		return m, nil
	}
}
