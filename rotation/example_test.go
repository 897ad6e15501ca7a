package rotation_test

import (
	"fmt"
	"math/big"

	"github.com/hjstephan/subgraph/matrix"
	"github.com/hjstephan/subgraph/rotation"
	"github.com/hjstephan/subgraph/signature"
)

// ExampleContains encodes a two-edge path and a three-cycle, then asks
// whether the path's structure occurs inside the cycle.
func ExampleContains() {
	path, _ := matrix.FromRows([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	cycle, _ := matrix.FromRows([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})

	sigPath, _ := signature.Encode(path)
	sigCycle, _ := signature.Encode(cycle)

	ok, _ := rotation.Contains(sigPath, sigCycle)
	fmt.Println(ok)
	// Output:
	// true
}

// ExampleContains_withOnRotation watches the search re-root the longer
// sequence until a wrapped match is exposed.
func ExampleContains_withOnRotation() {
	sub := []*big.Int{big.NewInt(2), big.NewInt(5)}
	super := []*big.Int{big.NewInt(1), big.NewInt(11), big.NewInt(18)}

	ok, _ := rotation.Contains(sub, super,
		rotation.WithOnRotation(func(offset int) {
			fmt.Println("rotation", offset)
		}))
	fmt.Println(ok)
	// Output:
	// rotation 0
	// rotation 1
	// true
}
