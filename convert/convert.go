// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/hjstephan/subgraph/matrix"
)

// Sentinel errors returned by this package; match with errors.Is.
var (
	// ErrNilGraph marks a nil graph value handed to FromDirected.
	ErrNilGraph = errors.New("convert: nil graph")
	// ErrNilSource marks a nil gonum matrix handed to FromMat.
	ErrNilSource = errors.New("convert: nil source")
	// ErrSelfLoop marks a nonzero diagonal cell; simple directed graphs
	// cannot represent self-edges.
	ErrSelfLoop = errors.New("convert: self-loop not representable")
	// ErrEmptyMatrix marks a 0×0 matrix; gonum/mat cannot represent it.
	ErrEmptyMatrix = errors.New("convert: empty matrix not representable")
)

// FromDirected flattens a gonum directed graph into a square adjacency
// matrix. Node IDs map to row indices by ascending ID; the returned map
// records that assignment. Every edge becomes a cell of value one,
// whatever its weight.
func FromDirected(g graph.Directed) (*matrix.Dense, map[int64]int, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("FromDirected: %w", ErrNilGraph)
	}

	var ids []int64
	if it := g.Nodes(); it != nil {
		for it.Next() {
			ids = append(ids, it.Node().ID())
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	m, err := matrix.NewDense(len(ids), len(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("FromDirected: %w", err)
	}
	for _, uid := range ids {
		to := g.From(uid)
		if to == nil {
			continue
		}
		for to.Next() {
			vid := to.Node().ID()
			if err := m.Set(index[uid], index[vid], 1); err != nil {
				return nil, nil, fmt.Errorf("FromDirected: edge %d→%d: %w", uid, vid, err)
			}
		}
	}

	return m, index, nil
}

// ToDirected builds a simple.DirectedGraph from a square matrix: nodes
// are 0..n-1 and any nonzero cell (i,j) becomes the edge i→j. Nonzero
// diagonal cells yield ErrSelfLoop.
func ToDirected(m *matrix.Dense) (*simple.DirectedGraph, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("ToDirected: %w", err)
	}

	n := m.Rows()
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	var loopErr error
	m.Do(func(i, j int, v float64) bool {
		if v == 0 {
			return true
		}
		if i == j {
			loopErr = fmt.Errorf("ToDirected: node %d: %w", i, ErrSelfLoop)
			return false
		}
		g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})

		return true
	})
	if loopErr != nil {
		return nil, loopErr
	}

	return g, nil
}

// ToMat copies a matrix into a gonum mat.Dense, preserving cell values.
// The 0×0 matrix yields ErrEmptyMatrix; gonum cannot hold it.
func ToMat(m *matrix.Dense) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToMat: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToMat: %d×%d: %w", r, c, ErrEmptyMatrix)
	}

	out := mat.NewDense(r, c, nil)
	m.Do(func(i, j int, v float64) bool {
		out.Set(i, j, v)

		return true
	})

	return out, nil
}

// FromMat copies a gonum matrix into a Dense, preserving cell values.
// NaN or Inf cells surface the matrix value sentinel.
func FromMat(src mat.Matrix) (*matrix.Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromMat: %w", ErrNilSource)
	}

	r, c := src.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromMat: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := out.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromMat: (%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}
