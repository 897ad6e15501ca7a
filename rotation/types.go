// Package rotation provides tunable options and error definitions
// for the cyclic-rotation containment search over signature sequences.
package rotation

import (
	"context"
	"errors"
	"fmt"

	"github.com/hjstephan/subgraph/runmatch"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("rotation: invalid option supplied")

// Option configures the containment search via functional arguments.
// If an Option is invalid (e.g. MinRun < 1), it is recorded internally
// and surfaced as ErrOptionViolation when Contains is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per rotation.
	Ctx context.Context

	// MinRun is the window acceptance threshold handed to runmatch.
	MinRun int

	// OnRotation is called once per rotation offset, before that
	// rotation's windows are scanned. Receives the offset in 0..nSuper-1.
	OnRotation func(offset int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - runmatch.DefaultMinRun acceptance threshold
//   - no-op OnRotation hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MinRun:     runmatch.DefaultMinRun,
		OnRotation: func(int) {},
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinRun sets the window acceptance threshold.
//
//	m >= 1: accept a window once it shares a run of m equal values
//	m < 1:  invalid option → ErrOptionViolation
func WithMinRun(m int) Option {
	return func(o *Options) {
		if m < 1 {
			o.err = fmt.Errorf("%w: MinRun must be >= 1 (%d)", ErrOptionViolation, m)
			return
		}
		o.MinRun = m
	}
}

// WithOnRotation registers a hook to run once per rotation offset.
func WithOnRotation(fn func(offset int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRotation = fn
		}
	}
}
