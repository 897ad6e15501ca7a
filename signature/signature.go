package signature

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/hjstephan/subgraph/matrix"
)

// ErrNilSignature indicates a nil *big.Int inside a signature sequence.
var ErrNilSignature = errors.New("signature: nil value in sequence")

// Encode maps each column of the square matrix m to a single non-negative
// integer that is unique across all columns of that matrix.
//
// Algorithm Outline:
//  1. Validate m (non-nil, square); fail fast before any signature math.
//  2. For each column c, build rowPart by setting bit i for every row i
//     whose entry at (i, c) is nonzero.
//  3. Add colPart = c·2^n, placing the column in its own numeric band.
//
// The order of the returned sequence is the column order of m. An all-zero
// column yields exactly colPart; a 0×0 matrix yields an empty sequence.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n) big.Int values of O(n) bits each
//
// Errors:
//   - matrix.ErrNilMatrix  — m is nil.
//   - matrix.ErrNonSquare  — m is not square.
func Encode(m *matrix.Dense) ([]*big.Int, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	n := m.Rows()
	sigs := make([]*big.Int, n)

	var c, i int
	var v float64
	for c = 0; c < n; c++ {
		// rowPart: the column's bit pattern read as a binary number.
		rowPart := new(big.Int)
		for i = 0; i < n; i++ {
			v, _ = m.At(i, c) // indices are valid after shape validation
			if v != 0 {
				rowPart.SetBit(rowPart, i, 1)
			}
		}
		// colPart = c·2^n: strictly greater than any rowPart, so bands
		// never overlap and positional information survives the sum.
		colPart := new(big.Int).Lsh(big.NewInt(int64(c)), uint(n))
		sigs[c] = rowPart.Add(rowPart, colPart)
	}

	return sigs, nil
}

// RowSignatures strips the positional band from a signature sequence:
// every value is reduced mod 2^n with n = len(sigs), recovering the
// bit-pattern part alone. The rotation search uses this to compare columns
// across different absolute positions.
//
// The input is never mutated; the result holds fresh values.
//
// Complexity: O(n) reductions, each over O(n)-bit values.
//
// Errors:
//   - ErrNilSignature — some element of sigs is nil.
func RowSignatures(sigs []*big.Int) ([]*big.Int, error) {
	n := len(sigs)
	out := make([]*big.Int, n)
	if n == 0 {
		return out, nil
	}

	// One shared modulus 2^n for the whole sequence.
	mod := new(big.Int).Lsh(big.NewInt(1), uint(n))
	for i, s := range sigs {
		if s == nil {
			return nil, fmt.Errorf("RowSignatures: index %d: %w", i, ErrNilSignature)
		}
		out[i] = new(big.Int).Mod(s, mod)
	}

	return out, nil
}
