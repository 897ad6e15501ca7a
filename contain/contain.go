// Package contain implements the decision engine itself; options and
// errors live in types.go, the verdict vocabulary in decision.go.
package contain

import (
	"fmt"

	"github.com/hjstephan/subgraph/adjlist"
	"github.com/hjstephan/subgraph/matrix"
	"github.com/hjstephan/subgraph/rotation"
	"github.com/hjstephan/subgraph/signature"
)

// Compare encodes both adjacency matrices and runs the rotation search
// in both directions, returning the verdict and the retained matrix.
//
// The retained matrix aliases the winning input (nil for Neither).
// Returns ErrOptionViolation for bad options, wrapped matrix sentinels
// for nil or non-square input, and the context error on cancellation.
func Compare(a, b *matrix.Dense, opts ...Option) (Decision, *matrix.Dense, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Neither, nil, o.err
	}

	// Fail fast on malformed input, naming the offending side.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Neither, nil, fmt.Errorf("Compare: matrix A: %w", err)
	}
	if err := matrix.ValidateSquareNonNil(b); err != nil {
		return Neither, nil, fmt.Errorf("Compare: matrix B: %w", err)
	}

	sigA, err := signature.Encode(a)
	if err != nil {
		return Neither, nil, fmt.Errorf("Compare: encode A: %w", err)
	}
	sigB, err := signature.Encode(b)
	if err != nil {
		return Neither, nil, fmt.Errorf("Compare: encode B: %w", err)
	}

	ropts := []rotation.Option{
		rotation.WithContext(o.Ctx),
		rotation.WithMinRun(o.MinRun),
	}

	aInB, err := rotation.Contains(sigA, sigB, ropts...)
	if err != nil {
		return Neither, nil, fmt.Errorf("Compare: A in B: %w", err)
	}
	bInA, err := rotation.Contains(sigB, sigA, ropts...)
	if err != nil {
		return Neither, nil, fmt.Errorf("Compare: B in A: %w", err)
	}

	d, kept := verdict(a, b, aInB, bInA)

	return d, kept, nil
}

// CompareExact answers the label-aligned variant: every edge of the
// contained matrix must appear at identical coordinates in the other.
//
// Both matrices must be square and of equal size; differing node counts
// surface the matrix dimension sentinel. Mutual exact containment means
// the edge sets are identical, so no tie-break is needed and A is
// retained as the canonical copy.
func CompareExact(a, b *matrix.Dense) (Decision, *matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: matrix A: %w", err)
	}
	if err := matrix.ValidateSquareNonNil(b); err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: matrix B: %w", err)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: %w", err)
	}

	la, err := adjlist.FromDense(a)
	if err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: matrix A: %w", err)
	}
	lb, err := adjlist.FromDense(b)
	if err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: matrix B: %w", err)
	}

	aInB, err := la.SubsetOf(lb)
	if err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: %w", err)
	}
	bInA, err := lb.SubsetOf(la)
	if err != nil {
		return Neither, nil, fmt.Errorf("CompareExact: %w", err)
	}

	switch {
	case aInB && bInA:
		// Identical edge sets; A is the canonical copy.
		return EqualPrefersA, a, nil
	case aInB:
		return PrefersB, b, nil
	case bInA:
		return PrefersA, a, nil
	default:
		return Neither, nil, nil
	}
}

// verdict maps the two rotation-search bits onto a Decision and the
// retained matrix. Mutual containment falls to the edge-count tie-break.
func verdict(a, b *matrix.Dense, aInB, bInA bool) (Decision, *matrix.Dense) {
	switch {
	case aInB && bInA:
		if b.EdgeCount() > a.EdgeCount() {
			return EqualPrefersB, b
		}
		return EqualPrefersA, a
	case aInB:
		return PrefersB, b
	case bInA:
		return PrefersA, a
	default:
		return Neither, nil
	}
}
