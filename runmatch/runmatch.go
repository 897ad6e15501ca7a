package runmatch

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors returned by this package. Match and LongestRun wrap
// them with contextual detail via fmt.Errorf("%w: ...", Err...), so use
// errors.Is for matching.
var (
	// ErrMinRunTooSmall marks a negative MinRun threshold.
	ErrMinRunTooSmall = errors.New("runmatch: MinRun must be >= 1")
	// ErrNilElement marks a nil *big.Int inside an input sequence.
	ErrNilElement = errors.New("runmatch: nil element in sequence")
)

// LongestRun returns the length of the longest contiguous run of equal
// values shared by a and b, i.e. the longest common substring length.
//
// Implementation:
//
//	Stage 1. Validate: every element of a and b must be non-nil
//	         (big.Int comparison panics on nil, so reject up front).
//	Stage 2. Short-circuit: either sequence empty ⇒ longest run 0.
//	Stage 3. Fill the run-length table
//	           dp[i][j] = dp[i-1][j-1]+1  if a[i-1] == b[j-1]
//	           dp[i][j] = 0               otherwise
//	         tracking the running maximum. Storage follows
//	         opts.MemoryMode: the full table, or two rolling rows.
//
// Returns:
//   - (length, nil) on success; length is 0 when nothing is shared.
//   - (0, ErrNilElement) when a sequence contains a nil value.
//
// Determinism: output depends only on the element values.
// Complexity: O(n·m) comparisons; memory O(n·m) or O(m) per MemoryMode.
func LongestRun(a, b []*big.Int, opts *Options) (int, error) {
	// Stage 1: element validation.
	if err := validateElems("a", a); err != nil {
		return 0, err
	}
	if err := validateElems("b", b); err != nil {
		return 0, err
	}

	// Stage 2: empty input shares no run.
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil
	}

	// Stage 3: DP fill.
	if opts.memoryMode() == RollingArray {
		return longestRunRolling(a, b), nil
	}
	return longestRunFull(a, b), nil
}

// Match reports whether a and b share a contiguous run of at least
// opts.MinRun equal values (DefaultMinRun when unset).
//
// Returns:
//   - (true, nil) when the longest shared run reaches the threshold.
//   - (false, nil) otherwise, including for empty input.
//   - (false, ErrMinRunTooSmall) when the threshold is negative.
//   - (false, ErrNilElement) when a sequence contains a nil value.
func Match(a, b []*big.Int, opts *Options) (bool, error) {
	minRun := opts.minRun()
	if minRun < 1 {
		return false, fmt.Errorf("%w: got %d", ErrMinRunTooSmall, minRun)
	}
	best, err := LongestRun(a, b, opts)
	if err != nil {
		return false, err
	}
	return best >= minRun, nil
}

// validateElems rejects nil entries, naming the offending sequence and
// index in the wrapped error.
func validateElems(name string, seq []*big.Int) error {
	for i, v := range seq {
		if v == nil {
			return fmt.Errorf("%w: sequence %s index %d", ErrNilElement, name, i)
		}
	}
	return nil
}

// longestRunFull fills the complete (n+1)×(m+1) table.
func longestRunFull(a, b []*big.Int) int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	best := 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1].Cmp(b[j-1]) == 0 {
				dp[i][j] = dp[i-1][j-1] + 1
				if dp[i][j] > best {
					best = dp[i][j]
				}
			}
		}
	}
	return best
}

// longestRunRolling keeps two rows of the table, alternating by row
// parity. Cells must be cleared explicitly on mismatch: the slot still
// holds the value from two rows back.
func longestRunRolling(a, b []*big.Int) int {
	n, m := len(a), len(b)
	dp := [2][]int{make([]int, m+1), make([]int, m+1)}
	best := 0
	for i := 1; i <= n; i++ {
		curr, prev := dp[i%2], dp[(i-1)%2]
		for j := 1; j <= m; j++ {
			if a[i-1].Cmp(b[j-1]) == 0 {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
	}
	return best
}
