// Package contain provides tunable options and error definitions for
// the containment decision engine.
package contain

import (
	"context"
	"errors"
	"fmt"

	"github.com/hjstephan/subgraph/runmatch"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("contain: invalid option supplied")

// Option configures Compare via functional arguments. Invalid options
// are recorded internally and surfaced as ErrOptionViolation when
// Compare is invoked.
type Option func(*Options)

// Options holds parameters forwarded to the rotation search.
type Options struct {
	// Ctx allows cancellation and deadlines across both directions.
	Ctx context.Context

	// MinRun is the window acceptance threshold for the rotation search.
	MinRun int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - runmatch.DefaultMinRun acceptance threshold
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		MinRun: runmatch.DefaultMinRun,
		err:    nil,
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
