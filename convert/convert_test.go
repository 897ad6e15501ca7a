// SPDX-License-Identifier: MIT

package convert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/hjstephan/subgraph/convert"
	"github.com/hjstephan/subgraph/matrix"
)

// fromRows builds a Dense from literal rows.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestToDirected_Topology: nonzero cells become directed edges over
// nodes 0..n-1.
func TestToDirected_Topology(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{
		{0, 2.5, 0},
		{0, 0, 1},
		{0, 0, 0},
	})

	g, err := convert.ToDirected(m)
	require.NoError(t, err)
	require.Equal(t, 3, g.Nodes().Len())
	require.True(t, g.HasEdgeFromTo(0, 1)) // magnitude 2.5 still an edge
	require.True(t, g.HasEdgeFromTo(1, 2))
	require.False(t, g.HasEdgeFromTo(1, 0)) // direction preserved
	require.False(t, g.HasEdgeFromTo(2, 0))
}

// TestToDirected_SelfLoop: simple graphs cannot hold self-edges, so the
// diagonal is rejected instead of panicking inside gonum.
func TestToDirected_SelfLoop(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{
		{1, 0},
		{0, 0},
	})

	_, err := convert.ToDirected(m)
	require.ErrorIs(t, err, convert.ErrSelfLoop)
}

// TestToDirected_Validation: matrix sentinels pass through wrapped.
func TestToDirected_Validation(t *testing.T) {
	t.Parallel()

	_, err := convert.ToDirected(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = convert.ToDirected(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestFromDirected_SortedIDs: arbitrary node IDs map to indices by
// ascending ID, so conversion is deterministic whatever the insertion
// order was.
func TestFromDirected_SortedIDs(t *testing.T) {
	t.Parallel()

	g := simple.NewDirectedGraph()
	g.AddNode(simple.Node(30))
	g.AddNode(simple.Node(20))
	g.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(30)})

	m, index, err := convert.FromDirected(g)
	require.NoError(t, err)
	require.Equal(t, map[int64]int{10: 0, 20: 1, 30: 2}, index)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 1, m.EdgeCount())

	v, err := m.At(0, 2) // 10 → 30 under the sorted mapping
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestFromDirected_RoundTrip: a binary matrix survives the trip through
// gonum unchanged.
func TestFromDirected_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := fromRows(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})

	g, err := convert.ToDirected(orig)
	require.NoError(t, err)
	back, index, err := convert.FromDirected(g)
	require.NoError(t, err)

	require.Equal(t, map[int64]int{0: 0, 1: 1, 2: 2}, index)
	require.Equal(t, orig.String(), back.String())
}

// TestFromDirected_Degenerate: nil graphs error, node-free graphs yield
// the legal empty matrix.
func TestFromDirected_Degenerate(t *testing.T) {
	t.Parallel()

	_, _, err := convert.FromDirected(nil)
	require.ErrorIs(t, err, convert.ErrNilGraph)

	m, index, err := convert.FromDirected(simple.NewDirectedGraph())
	require.NoError(t, err)
	require.Zero(t, m.Rows())
	require.Empty(t, index)
}

// TestToMat_Values: cell values cross into gonum untouched; the empty
// matrix cannot.
func TestToMat_Values(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{
		{0, 2.5},
		{-1, 0},
	})

	gm, err := convert.ToMat(m)
	require.NoError(t, err)
	r, c := gm.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 2.5, gm.At(0, 1))
	require.Equal(t, -1.0, gm.At(1, 0))

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	_, err = convert.ToMat(empty)
	require.ErrorIs(t, err, convert.ErrEmptyMatrix)

	_, err = convert.ToMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFromMat_RoundTrip: gonum matrices convert back value for value;
// non-finite cells surface the matrix sentinel.
func TestFromMat_RoundTrip(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 3, []float64{0, 1.5, 0, -2, 0, 3})

	m, err := convert.FromMat(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -2.0, v)

	_, err = convert.FromMat(nil)
	require.ErrorIs(t, err, convert.ErrNilSource)

	bad := mat.NewDense(1, 2, []float64{0, math.NaN()})
	_, err = convert.FromMat(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
