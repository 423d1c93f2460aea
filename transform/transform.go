// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matcipher/shape"
)

const (
	opMultiply = "Multiply"
	opApply    = "Apply"
)

// Multiply is the accumulate-and-emit pass: for every consecutive window of
// cols elements it emits sum(key[i]*msg[i]) over that window.
//
// Implementation:
//   - Stage 1: validate cols > 0, len(key) == len(msg), len(msg) % cols == 0.
//   - Stage 2: single pass i = 0..len-1, accumulating; at (i+1) % cols == 0
//     emit the sum and reset it.
//
// Returns:
//   - []int of length len(msg)/cols.
//
// Errors:
//   - ErrBadColCount, ErrDimensionMismatch. Nothing is ever truncated.
//   - ErrOverflow when a product or window sum leaves the int range.
//
// Complexity:
//   - Time O(len(msg)), Space O(len(msg)/cols).
func Multiply(key, msg []int, cols int) ([]int, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opMultiply, cols, ErrBadColCount)
	}
	if len(key) != len(msg) {
		return nil, fmt.Errorf("%s: key len %d, message len %d: %w", opMultiply, len(key), len(msg), ErrDimensionMismatch)
	}
	if len(msg)%cols != 0 {
		return nil, fmt.Errorf("%s: message len %d not divisible by %d: %w", opMultiply, len(msg), cols, ErrDimensionMismatch)
	}

	out := make([]int, 0, len(msg)/cols)
	var acc, p int
	for i := range msg {
		p = key[i] * msg[i]
		if mulOverflows(key[i], msg[i], p) {
			return nil, fmt.Errorf("%s: %d·%d at %d: %w", opMultiply, key[i], msg[i], i, ErrOverflow)
		}
		if (p > 0 && acc > math.MaxInt-p) || (p < 0 && acc < math.MinInt-p) {
			return nil, fmt.Errorf("%s: window sum at %d: %w", opMultiply, i, ErrOverflow)
		}
		acc += p
		if (i+1)%cols == 0 {
			out = append(out, acc)
			acc = 0
		}
	}

	return out, nil
}

// Apply returns the product K·M for one n×n message tile M (flat row-major,
// message read along rows). tile itself is not modified.
//
// Implementation:
//   - Stage 1: validate key and len(tile) == n*n.
//   - Stage 2: Mᵀ = shape.Transpose(copy of tile, n, n), so each window of n
//     elements is one column of M.
//   - Stage 3: for each key row i, Multiply(row_i repeated n times, Mᵀ, n)
//     yields row i of K·M.
//
// Errors:
//   - ErrNilKey, ErrDimensionMismatch, ErrOverflow.
//   - shape.ErrBadRowCount for a zero Key.
//
// Complexity:
//   - Time O(n³) per tile (n Multiply passes over n² elements), Space O(n²).
func Apply(key *Key, tile []int) ([]int, error) {
	if key == nil {
		return nil, fmt.Errorf("%s: %w", opApply, ErrNilKey)
	}
	n := key.n
	if len(tile) != n*n {
		return nil, fmt.Errorf("%s: tile len %d, want %d: %w", opApply, len(tile), n*n, ErrDimensionMismatch)
	}

	mt := make([]int, len(tile))
	copy(mt, tile)
	if _, err := shape.Transpose(mt, n, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}

	out := make([]int, 0, n*n)
	lane := make([]int, n*n)
	for i := 0; i < n; i++ {
		row := key.data[i*n : (i+1)*n]
		for w := 0; w < n; w++ {
			copy(lane[w*n:], row)
		}
		part, err := Multiply(lane, mt, n)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opApply, i, err)
		}
		out = append(out, part...)
	}

	return out, nil
}

// mulOverflows reports whether p = a*b wrapped around.
func mulOverflows(a, b, p int) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return true
	}

	return p/b != a
}
