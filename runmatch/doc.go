// Package runmatch decides whether two integer sequences share a contiguous
// equal-valued run — a common substring, not merely a common subsequence —
// of a configurable minimum length.
//
// 🚀 What is a run match?
//
//	The rotation search needs an acceptance test for "does this window of
//	row signatures look like that sequence?". A single position where both
//	sequences agree is coincidence; two consecutive agreeing positions are
//	treated as structural evidence. runmatch finds the longest common
//	contiguous run via the classic dynamic-programming table
//
//	  dp[i][j] = dp[i-1][j-1] + 1   when a[i-1] == b[j-1]
//	  dp[i][j] = 0                  otherwise
//
//	and Match accepts when the running maximum reaches MinRun (default 2).
//
// ✨ Key features:
//   - full-matrix mode: the whole (n+1)×(m+1) table, O(n·m) memory
//   - rolling mode: two rows only, O(m) memory, identical results
//     (choose via MemoryMode)
//   - big.Int elements: works directly on signature sequences of any size
//   - total over well-formed input: empty sequences simply never match
//
// ⚙️ Usage:
//
//	import "github.com/hjstephan/subgraph/runmatch"
//
//	opts := &runmatch.Options{
//	  MinRun:     2,                     // acceptance threshold
//	  MemoryMode: runmatch.RollingArray, // two-row storage
//	}
//
//	ok, err := runmatch.Match(seqA, seqB, opts)
//	best, err := runmatch.LongestRun(seqA, seqB, opts)
//
// Performance:
//
//   - Time:   O(n·m) big.Int comparisons
//   - Memory: O(n·m) (FullMatrix) or O(m) (RollingArray)
//
// See example_test.go for worked scenarios.
package runmatch
