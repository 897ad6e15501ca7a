// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// api.go - the Constructor type and the WithEdges decorator.
//
// Design contract (strict):
//   - All public factories are declared in impl_*.go; this file holds the
//     shared function type and composition helpers.
//   - Constructors validate their parameters inside the closure and return
//     sentinel errors; they never panic.
//   - Determinism: equal parameters ⇒ byte-identical matrices.

package builder

import (
	"fmt"

	"github.com/hjstephan/subgraph/matrix"
)

// Constructor builds a fresh adjacency matrix for a fixed topology.
// Each call allocates a new *matrix.Dense; closures carry no mutable
// state, so a Constructor may be invoked any number of times.
type Constructor func() (*matrix.Dense, error)

// Edge names a directed edge by endpoint indices.
type Edge struct {
	From, To int
}

// File-local constants for method tagging.
const methodWithEdges = "WithEdges"

// WithEdges decorates base, setting each listed edge to 1 after the base
// topology is built. Endpoints outside the matrix surface the matrix
// range sentinel with positional context.
//
// Rationale: fixtures frequently need "a named topology plus a chord";
// decoration keeps the base constructors single-purpose.
func WithEdges(base Constructor, edges ...Edge) Constructor {
	return func() (*matrix.Dense, error) {
		if base == nil {
			return nil, fmt.Errorf("%s: nil base constructor: %w", methodWithEdges, ErrConstructFailed)
		}
		m, err := base()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodWithEdges, err)
		}
		for _, e := range edges {
			if err := m.Set(e.From, e.To, 1); err != nil {
				return nil, fmt.Errorf("%s: edge %d→%d: %w", methodWithEdges, e.From, e.To, err)
			}
		}

		return m, nil
	}
}
