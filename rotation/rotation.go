// Package rotation implements cyclic-rotation containment search over
// column-signature sequences; options and errors live in types.go.
package rotation

import (
	"fmt"
	"math/big"

	"github.com/hjstephan/subgraph/runmatch"
	"github.com/hjstephan/subgraph/signature"
)

// Contains reports whether the structure encoded by sub occurs in super
// under some cyclic rotation, applying any number of functional Options.
//
// The search strips positional parts from both sequences, then visits
// every left rotation of super in order 0..len(super)-1; within each
// rotation, every window of len(sub) consecutive elements is compared
// against sub with runmatch.Match. The first accepted window wins.
//
// Returns ErrOptionViolation for bad options, a wrapped
// signature.ErrNilSignature for nil sequence elements, the context
// error on cancellation, or the plain containment verdict otherwise.
func Contains(sub, super []*big.Int, opts ...Option) (bool, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	// Short-circuits precede any signature work.
	nSub, nSuper := len(sub), len(super)
	if nSub > nSuper {
		return false, nil // larger structure cannot embed in smaller
	}
	if nSub == 0 {
		return true, nil // empty structure is contained in anything
	}

	// Strip positional parts; each sequence reduces modulo 2^len(seq).
	rowsSub, err := signature.RowSignatures(sub)
	if err != nil {
		return false, fmt.Errorf("rotation: sub: %w", err)
	}
	rowsSuper, err := signature.RowSignatures(super)
	if err != nil {
		return false, fmt.Errorf("rotation: super: %w", err)
	}

	ropts := &runmatch.Options{MinRun: o.MinRun, MemoryMode: runmatch.RollingArray}
	rot := make([]*big.Int, nSuper) // one buffer, reused per rotation

	for r := 0; r < nSuper; r++ {
		// cancellation check (once per rotation)
		select {
		case <-o.Ctx.Done():
			return false, o.Ctx.Err()
		default:
		}

		o.OnRotation(r)
		rotateInto(rot, rowsSuper, r)

		for s := 0; s+nSub <= nSuper; s++ {
			ok, err := runmatch.Match(rowsSub, rot[s:s+nSub], ropts)
			if err != nil {
				return false, fmt.Errorf("rotation: window [%d,%d): %w", s, s+nSub, err)
			}
			if ok {
				return true, nil
			}
		}
	}

	return false, nil
}

// rotateInto writes the left rotation of src by r into dst: the element
// at index r lands at index 0. dst and src must have equal length.
func rotateInto(dst, src []*big.Int, r int) {
	n := len(src)
	copy(dst, src[r:])
	copy(dst[n-r:], src[:r])
}
