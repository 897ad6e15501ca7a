package contain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeNodes marks a complexity query for a negative node count.
var ErrNegativeNodes = errors.New("contain: node count must be >= 0")

// Asymptotic orders of the two pipeline phases.
const (
	orderEncoding = "O(n^2)"
	orderSearch   = "O(n^3)"
)

// Complexity summarizes the work a Compare call performs for two n-node
// matrices, phase by phase. Encoding counts cover both matrices; the
// search counts cover one containment direction (a mutual query doubles
// them without changing the order). All counts are exact step counts,
// not bounds, so tests and capacity planning can rely on them.
type Complexity struct {
	// Nodes is the shared node count n.
	Nodes int
	// EncodingSteps counts cell visits while encoding signatures: one
	// n² pass per matrix, 2n² in total.
	EncodingSteps int
	// Rotations counts cyclic rotations per search direction. The
	// sequential column ordering keeps this at n, not n!.
	Rotations int
	// StepsPerRotation counts window comparisons within one rotation.
	StepsPerRotation int
	// SearchSteps counts work across all rotations: n³.
	SearchSteps int
	// TotalSteps is encoding plus search.
	TotalSteps int
}

// AnalyzeComplexity reports the step counts a containment comparison of
// two n-node matrices performs. Negative n yields ErrNegativeNodes.
func AnalyzeComplexity(n int) (Complexity, error) {
	if n < 0 {
		return Complexity{}, fmt.Errorf("AnalyzeComplexity: n=%d: %w", n, ErrNegativeNodes)
	}

	return Complexity{
		Nodes:            n,
		EncodingSteps:    2 * n * n,
		Rotations:        n,
		StepsPerRotation: n * n,
		SearchSteps:      n * n * n,
		TotalSteps:       2*n*n + n*n*n,
	}, nil
}

// String renders the phase table printed by the demo binary.
func (c Complexity) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes:              %d\n", c.Nodes)
	fmt.Fprintf(&sb, "signature encoding: %d steps (%s)\n", c.EncodingSteps, orderEncoding)
	fmt.Fprintf(&sb, "rotation search:    %d rotations, %d steps each, %d steps (%s)\n",
		c.Rotations, c.StepsPerRotation, c.SearchSteps, orderSearch)
	fmt.Fprintf(&sb, "total:              %d steps (%s)\n", c.TotalSteps, orderSearch)
	sb.WriteString("note: sequential column ordering keeps the rotation count linear in n, not factorial")

	return sb.String()
}

// compile-time interface assertion
var _ fmt.Stringer = Complexity{}
