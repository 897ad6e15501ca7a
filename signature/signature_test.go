// Package signature_test verifies the column-signature encoding: band
// uniqueness, positional separation, stripping, and big-integer growth.
package signature_test

import (
	"math/big"
	"testing"

	"github.com/hjstephan/subgraph/matrix"
	"github.com/hjstephan/subgraph/signature"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a Dense from rows or fails the test.
func mustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// sigStrings renders a signature sequence for compact comparisons.
func sigStrings(sigs []*big.Int) []string {
	out := make([]string, len(sigs))
	for i, s := range sigs {
		out[i] = s.String()
	}
	return out
}

// TestEncodeKnownValues pins the encoding on hand-computed scenarios.
func TestEncodeKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want []string
	}{
		{
			// All-zero columns yield exactly their colPart: 0·4 and 1·4.
			name: "empty 2x2",
			rows: [][]float64{{0, 0}, {0, 0}},
			want: []string{"0", "4"},
		},
		{
			// Identity: rowPart 1 and 2, colPart 0 and 4.
			name: "identity 2x2",
			rows: [][]float64{{1, 0}, {0, 1}},
			want: []string{"1", "6"},
		},
		{
			// Identity 3x3: rowParts 1,2,4 plus bands 0,8,16.
			name: "identity 3x3",
			rows: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			want: []string{"1", "10", "20"},
		},
		{
			// Complete 2-node graph: both columns share rowPart 3; the
			// bands alone keep them distinct (3 and 3+4).
			name: "complete 2x2",
			rows: [][]float64{{1, 1}, {1, 1}},
			want: []string{"3", "7"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sigs, err := signature.Encode(mustMatrix(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, sigStrings(sigs))
		})
	}
}

// TestEncodeNonzeroNormalization: any nonzero magnitude reads as bit 1.
func TestEncodeNonzeroNormalization(t *testing.T) {
	t.Parallel()

	binary := mustMatrix(t, [][]float64{{1, 0}, {0, 1}})
	weighted := mustMatrix(t, [][]float64{{2.5, 0}, {0, -3}})

	a, err := signature.Encode(binary)
	require.NoError(t, err)
	b, err := signature.Encode(weighted)
	require.NoError(t, err)

	require.Equal(t, sigStrings(a), sigStrings(b)) // magnitudes never leak into signatures
}

// TestEncodeUniqueness: all n signatures of one matrix are pairwise distinct,
// even on a matrix whose columns all share the same bit pattern.
func TestEncodeUniqueness(t *testing.T) {
	t.Parallel()

	n := 6
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	// Fill every entry: all columns share rowPart 2^n − 1.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, 1))
		}
	}

	sigs, err := signature.Encode(m)
	require.NoError(t, err)
	require.Len(t, sigs, n)

	seen := make(map[string]bool, n)
	for _, s := range sigs {
		require.Falsef(t, seen[s.String()], "duplicate signature %s", s)
		seen[s.String()] = true
	}
}

// TestEncodePositionalSeparation: identical columns differ by (c2−c1)·2^n.
func TestEncodePositionalSeparation(t *testing.T) {
	t.Parallel()

	// Columns 0 and 2 carry the same pattern (rows 0 and 1 set).
	m := mustMatrix(t, [][]float64{
		{1, 0, 1},
		{1, 0, 1},
		{0, 1, 0},
	})
	sigs, err := signature.Encode(m)
	require.NoError(t, err)

	diff := new(big.Int).Sub(sigs[2], sigs[0])
	want := new(big.Int).Lsh(big.NewInt(2), 3) // (2−0)·2^3
	require.Zero(t, diff.Cmp(want), "distance between equal-pattern columns must be (c2−c1)·2^n")
}

// TestEncodeEmptyMatrix: a 0×0 input yields an empty sequence, not an error.
func TestEncodeEmptyMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)

	sigs, err := signature.Encode(m)
	require.NoError(t, err)
	require.Empty(t, sigs)
}

// TestEncodeInputValidation: nil and non-square inputs fail fast.
func TestEncodeInputValidation(t *testing.T) {
	t.Parallel()

	_, err := signature.Encode(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = signature.Encode(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestEncodeBeyondWordSize: signatures stay exact past the 64-bit range.
func TestEncodeBeyondWordSize(t *testing.T) {
	t.Parallel()

	n := 70
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	// Simple path 0→1→...→69: column c (c ≥ 1) has the single bit c−1.
	for i := 0; i < n-1; i++ {
		require.NoError(t, m.Set(i, i+1, 1))
	}

	sigs, err := signature.Encode(m)
	require.NoError(t, err)

	// Column 69: rowPart = 2^68, colPart = 69·2^70 — far beyond uint64.
	want := new(big.Int).Lsh(big.NewInt(1), 68)
	want.Add(want, new(big.Int).Lsh(big.NewInt(69), 70))
	require.Zero(t, sigs[69].Cmp(want))
}

// TestRowSignaturesStripping: mod 2^n removes exactly the positional band.
func TestRowSignaturesStripping(t *testing.T) {
	t.Parallel()

	sigs, err := signature.Encode(mustMatrix(t, [][]float64{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	rows, err := signature.RowSignatures(sigs)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, sigStrings(rows)) // bands 0 and 4 removed

	// The original sequence is untouched.
	require.Equal(t, []string{"1", "6"}, sigStrings(sigs))
}

// TestRowSignaturesEqualPatterns: after stripping, equal bit patterns in
// different positions become equal values — the property rotation relies on.
func TestRowSignaturesEqualPatterns(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{
		{1, 0, 1},
		{1, 0, 1},
		{0, 1, 0},
	})
	sigs, err := signature.Encode(m)
	require.NoError(t, err)

	rows, err := signature.RowSignatures(sigs)
	require.NoError(t, err)
	require.Zero(t, rows[0].Cmp(rows[2])) // same pattern, same stripped value
	require.NotZero(t, rows[0].Cmp(rows[1]))
}

// TestRowSignaturesNilElement: nil entries are reported, never dereferenced.
func TestRowSignaturesNilElement(t *testing.T) {
	t.Parallel()

	_, err := signature.RowSignatures([]*big.Int{big.NewInt(1), nil})
	require.ErrorIs(t, err, signature.ErrNilSignature)
}

// TestRowSignaturesEmpty: an empty sequence strips to an empty sequence.
func TestRowSignaturesEmpty(t *testing.T) {
	t.Parallel()

	rows, err := signature.RowSignatures(nil)
	require.NoError(t, err)
	require.Empty(t, rows)
}
