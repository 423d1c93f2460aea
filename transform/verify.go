// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// verifyTol absorbs float rounding when checking integer products.
const verifyTol = 1e-9

const opVerify = "KeyPair.Verify"

// Verify checks that Encode·Decode is the identity matrix.
//
// Implementation:
//   - Stage 0: Validate the pair, so gonum never sees a malformed shape.
//   - Stage 1: lift both keys into gonum dense matrices.
//   - Stage 2: reject a singular encoding key (det == 0).
//   - Stage 3: multiply and compare against I entry by entry.
//
// Errors:
//   - ErrNilKey, ErrNotSquare, ErrDimensionMismatch from Validate.
//   - ErrSingular, ErrNotInverse (with the first offending cell).
//
// Notes:
//   - Verify never computes an inverse; it only checks the one supplied.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (p *KeyPair) Verify() error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	n := p.Dim()
	enc := mat.NewDense(n, n, toFloats(p.Encode.data))
	dec := mat.NewDense(n, n, toFloats(p.Decode.data))

	if math.Abs(mat.Det(enc)) < verifyTol {
		return fmt.Errorf("%s: %w", opVerify, ErrSingular)
	}

	var prod mat.Dense
	prod.Mul(enc, dec)

	var want float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if got := prod.At(i, j); math.Abs(got-want) > verifyTol {
				return fmt.Errorf("%s: product[%d][%d] = %g: %w", opVerify, i, j, got, ErrNotInverse)
			}
		}
	}

	return nil
}

func toFloats(data []int) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}

	return out
}
