// Package rotation searches all cyclic rotations of one signature
// sequence for a window that run-matches another, answering "does the
// structure encoded by sub occur somewhere in super?".
//
// What
//
//   - Input: two column-signature sequences (see package signature),
//     sub of length nSub and super of length nSuper.
//   - Positional parts are stripped first: each sequence is reduced
//     modulo 2^n for its own length n, leaving pure row patterns.
//   - The super sequence is then rotated left nSuper times; rotation r
//     moves the element at index r to index 0.
//   - Every rotation is scanned with windows [s, s+nSub) for
//     s in [0, nSuper−nSub], and each window is compared against sub
//     with runmatch.Match.
//   - The first accepting window ends the search with true; exhausting
//     all rotations yields false.
//
// Why
//
//   - Column signatures are anchored to a labeling. A subgraph may sit
//     at any label offset of the containing graph, and on cyclic
//     structures the matching region may wrap around the sequence end.
//     Rotating the longer sequence makes the search label-invariant.
//
// Short-circuits
//
//   - nSub > nSuper: false, nothing rotated (larger cannot embed).
//   - nSub == 0: true, the empty structure is contained in anything.
//
// Determinism
//
//	Rotations are visited in order 0..nSuper−1 and windows in order of
//	ascending start, so the result and the OnRotation call sequence are
//	fully reproducible.
//
// Complexity (n = nSuper, m = nSub)
//
//   - Time:   O(n) rotations × O(n−m+1) windows × O(m²) run-match
//   - Memory: O(n) for the stripped copies and one rotation buffer
//
// Usage
//
//	// Plain containment query:
//	ok, err := rotation.Contains(sigSub, sigSuper)
//
//	// With functional options:
//	ok, err := rotation.Contains(
//	    sigSub, sigSuper,
//	    rotation.WithContext(ctx),
//	    rotation.WithMinRun(3),
//	    rotation.WithOnRotation(func(offset int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, runmatch.DefaultMinRun, no-op hook.
//   - WithContext(ctx):    set a custom context for cancellation.
//   - WithMinRun(m):       window acceptance threshold (m >= 1).
//   - WithOnRotation(fn):  hook called once per rotation offset, before
//     that rotation's windows are scanned.
//
// Errors
//
//   - ErrOptionViolation        if an invalid Option was supplied (e.g. MinRun < 1).
//   - signature.ErrNilSignature if either sequence holds a nil element.
//   - context.Canceled / DeadlineExceeded via the supplied context.
//
// Note: with the default threshold of 2, a sub sequence of length 1 can
// never be accepted — no window can hold a two-element run. Lower the
// threshold with WithMinRun(1) when single-column matching is wanted.
package rotation
