// SPDX-License-Identifier: MIT
// Package: subgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w with a method tag, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes).

package builder

import "errors"

// ErrTooFewNodes indicates that the node count is smaller than the
// minimum for the requested topology (e.g., Cycle needs n >= 3).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a malformed construction request, such as
// a nil base Constructor handed to WithEdges.
var ErrConstructFailed = errors.New("builder: construction failed")
