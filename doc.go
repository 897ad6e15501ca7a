// Package subgraph decides structural containment between directed graphs
// given as adjacency matrices — does one graph's edge structure appear,
// possibly under a cyclic relabeling of its node order, inside another?
//
// 🚀 What is subgraph?
//
//	A small, focused library that answers containment questions without
//	general (factorial) subgraph-isomorphism search:
//		• Column signatures: every matrix column encoded as one big integer
//		  carrying both its bit pattern and its position
//		• Rotation search: only the n cyclic rotations of a column order are
//		  tried — O(n³) instead of combinatorial blowup
//		• Run-match acceptance: a common contiguous signature run of length
//		  ≥ 2 (longest-common-substring DP) accepts a rotation window
//		• Decision engine: both directions compared, richer matrix retained
//		• Exact path: per-node out-neighbor bitset subset tests, no heuristic
//
// ✨ Why choose subgraph?
//
//   - Predictable cost – rotation search is polynomial by construction
//   - No overflow – signatures are math/big integers, any node count works
//   - Pure functions – no shared state, safe to call concurrently
//   - Extensible – functional options, observer hooks, context cancellation
//
// Everything is organized under focused subpackages:
//
//	matrix/    — dense 0/1 adjacency matrices, validators & sentinel errors
//	signature/ — column-signature encoding and positional stripping
//	runmatch/  — common-run dynamic programming (full or rolling storage)
//	rotation/  — cyclic-rotation containment search
//	adjlist/   — per-node out-neighbor bitsets for the exact path
//	contain/   — decision engine, decision tags & complexity report
//	builder/   — deterministic example-graph constructors
//	convert/   — gonum graph and mat.Dense interop
//
// Quick ASCII example:
//
//	    0 → 1 → 2 → 3        (matrix A: a simple path)
//	    0 → 1 → 2 → 3
//	    └──────↑              (matrix B: the same path plus chord 0→2)
//
//	Compare(A, B) finds containment in both directions and retains B —
//	the matrix carrying strictly more edges.
//
// Dive into cmd/main.go for a full walk-through of both comparison paths
// and the accompanying complexity report.
//
//	go get github.com/hjstephan/subgraph
package subgraph
