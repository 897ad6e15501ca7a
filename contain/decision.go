package contain

import "fmt"

// Decision is the verdict of a containment comparison.
type Decision int

const (
	// Neither marks mutual non-containment; no matrix is retained.
	Neither Decision = iota
	// PrefersA marks "B is contained in A"; A is retained.
	PrefersA
	// PrefersB marks "A is contained in B"; B is retained.
	PrefersB
	// EqualPrefersA marks mutual containment resolved toward A.
	EqualPrefersA
	// EqualPrefersB marks mutual containment resolved toward B, which
	// carries strictly more edges.
	EqualPrefersB
)

// String renders the verdict in the stable kebab-case vocabulary used
// by logs and the demo binary.
func (d Decision) String() string {
	switch d {
	case Neither:
		return "neither"
	case PrefersA:
		return "prefers-A"
	case PrefersB:
		return "prefers-B"
	case EqualPrefersA:
		return "equal-prefers-A"
	case EqualPrefersB:
		return "equal-prefers-B"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Retains reports whether the verdict retains any matrix at all.
func (d Decision) Retains() bool { return d != Neither }
