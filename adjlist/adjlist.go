package adjlist

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hjstephan/subgraph/matrix"
)

// Sentinel errors returned by this package; match with errors.Is.
var (
	// ErrSizeMismatch marks lists over differing node counts.
	ErrSizeMismatch = errors.New("adjlist: node counts differ")
	// ErrNilRow marks a nil out-neighbor set inside a List.
	ErrNilRow = errors.New("adjlist: nil row set")
	// ErrRowOutOfRange marks a node index outside the list.
	ErrRowOutOfRange = errors.New("adjlist: row index out of range")
)

// List is an adjacency list over nodes 0..len-1: entry i is the bitset
// of out-neighbors of node i.
type List []*bitset.BitSet

// FromDense converts a square adjacency matrix into a List. Any nonzero
// cell (i,j) sets bit j in row i; magnitude and sign carry no meaning.
//
// Returns the matrix validation error (wrapped) for nil or non-square
// input. A 0×0 matrix yields an empty List.
func FromDense(m *matrix.Dense) (List, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	n := m.Rows()
	out := make(List, n)
	for i := range out {
		out[i] = bitset.New(uint(n))
	}
	m.Do(func(i, j int, v float64) bool {
		if v != 0 {
			out[i].Set(uint(j))
		}
		return true
	})

	return out, nil
}

// SubsetOf reports whether every edge of l is also an edge of other,
// node by node under the shared labeling: for each i, the out-neighbor
// set l[i] must be a subset of other[i].
//
// Returns ErrSizeMismatch when the node counts differ and ErrNilRow
// when either list holds a nil set; no relabeling is attempted.
func (l List) SubsetOf(other List) (bool, error) {
	if len(l) != len(other) {
		return false, fmt.Errorf("SubsetOf: %d vs %d nodes: %w", len(l), len(other), ErrSizeMismatch)
	}
	for i := range l {
		if l[i] == nil || other[i] == nil {
			return false, fmt.Errorf("SubsetOf: index %d: %w", i, ErrNilRow)
		}
		if !other[i].IsSuperSet(l[i]) {
			return false, nil
		}
	}

	return true, nil
}

// OutDegree returns the number of out-neighbors of node i.
func (l List) OutDegree(i int) (uint, error) {
	if i < 0 || i >= len(l) {
		return 0, fmt.Errorf("OutDegree(%d): %w", i, ErrRowOutOfRange)
	}
	if l[i] == nil {
		return 0, fmt.Errorf("OutDegree(%d): %w", i, ErrNilRow)
	}

	return l[i].Count(), nil
}

// Len returns the node count.
func (l List) Len() int { return len(l) }
