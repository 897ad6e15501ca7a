package runmatch_test

import (
	"fmt"
	"math/big"

	"github.com/hjstephan/subgraph/runmatch"
)

// ExampleMatch shows the default acceptance rule: one shared value is
// coincidence, two consecutive shared values are a match.
func ExampleMatch() {
	nums := func(vals ...int64) []*big.Int {
		out := make([]*big.Int, len(vals))
		for i, v := range vals {
			out[i] = big.NewInt(v)
		}
		return out
	}

	single, _ := runmatch.Match(nums(1, 2, 3), nums(7, 2, 9), nil)
	pair, _ := runmatch.Match(nums(1, 2, 3), nums(0, 2, 3), nil)

	fmt.Println(single)
	fmt.Println(pair)
	// Output:
	// false
	// true
}

// ExampleLongestRun reports the raw run length for callers that want
// their own threshold.
func ExampleLongestRun() {
	nums := func(vals ...int64) []*big.Int {
		out := make([]*big.Int, len(vals))
		for i, v := range vals {
			out[i] = big.NewInt(v)
		}
		return out
	}

	best, _ := runmatch.LongestRun(nums(4, 1, 2, 3), nums(1, 2, 3, 9), nil)
	fmt.Println(best)
	// Output:
	// 3
}
