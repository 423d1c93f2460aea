// SPDX-License-Identifier: MIT

package shape

import "fmt"

// DefaultRowCount is the message-matrix row count used by the cipher.
const DefaultRowCount = 4

// padValue is the numeral appended by Pad (the first table symbol).
const padValue = 0

const (
	opPad       = "Pad"
	opReshape   = "Reshape"
	opFlatten   = "Flatten"
	opTranspose = "Transpose"
)

// Residue returns how many pad numerals bring n up to a multiple of rowCount.
// The outer modulo keeps an exact multiple at zero rather than a full extra row.
// rowCount must be positive.
func Residue(n, rowCount int) int {
	return (rowCount - n%rowCount) % rowCount
}

// Pad returns a copy of nums extended with Residue zero numerals so that
// len(result) % rowCount == 0 and len(result)-len(nums) < rowCount.
//
// Errors:
//   - ErrBadRowCount when rowCount <= 0.
//
// Complexity: O(len(nums)).
func Pad(nums []int, rowCount int) ([]int, error) {
	if rowCount <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opPad, rowCount, ErrBadRowCount)
	}

	residue := Residue(len(nums), rowCount)
	out := make([]int, len(nums), len(nums)+residue)
	copy(out, nums)
	for k := 0; k < residue; k++ {
		out = append(out, padValue)
	}

	return out, nil
}

// Reshape partitions nums into consecutive rows of cols elements, in order.
// Rows share no memory with nums.
//
// Errors:
//   - ErrBadColCount when cols <= 0.
//   - ErrDimensionMismatch when len(nums) % cols != 0 (never truncates or pads).
//
// Complexity: O(len(nums)).
func Reshape(nums []int, cols int) ([][]int, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opReshape, cols, ErrBadColCount)
	}
	if len(nums)%cols != 0 {
		return nil, fmt.Errorf("%s: len %d not divisible by %d: %w", opReshape, len(nums), cols, ErrDimensionMismatch)
	}

	rows := make([][]int, 0, len(nums)/cols)
	for start := 0; start < len(nums); start += cols {
		row := make([]int, cols)
		copy(row, nums[start:start+cols])
		rows = append(rows, row)
	}

	return rows, nil
}

// Flatten concatenates equal-length rows back into a row-major vector.
// Ragged rows yield ErrDimensionMismatch.
func Flatten(rows [][]int) ([]int, error) {
	if len(rows) == 0 {
		return []int{}, nil
	}

	cols := len(rows[0])
	out := make([]int, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", opFlatten, i, len(row), cols, ErrDimensionMismatch)
		}
		out = append(out, row...)
	}

	return out, nil
}

// TransposeSquare transposes the flat row-major n×n matrix m in place and
// returns it.
//
// Implementation:
//   - Walk the diagonal d = 0..n-2; for every k > d swap the pair
//     (d, k) ↔ (k, d), i.e. m[d*n+k] ↔ m[k*n+d].
//   - The diagonal itself never moves.
//
// Behavior highlights:
//   - Involution: TransposeSquare(TransposeSquare(m, n), n) restores m.
//   - No allocation.
//
// Errors:
//   - ErrBadRowCount when n <= 0.
//   - ErrDimensionMismatch when len(m) != n*n.
//
// Complexity: Time O(n²), Space O(1).
func TransposeSquare(m []int, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opTranspose, n, ErrBadRowCount)
	}
	if len(m) != n*n {
		return nil, fmt.Errorf("%s: len %d is not %d×%d: %w", opTranspose, len(m), n, n, ErrDimensionMismatch)
	}

	var upper, lower int
	for d := 0; d < n-1; d++ {
		for k := d + 1; k < n; k++ {
			upper = d*n + k
			lower = k*n + d
			m[upper], m[lower] = m[lower], m[upper]
		}
	}

	return m, nil
}

// Transpose transposes a flat rows×cols matrix in place. Only square shapes
// are supported; rectangular input returns ErrUnsupportedShape and leaves m
// untouched.
func Transpose(m []int, rows, cols int) ([]int, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opTranspose, rows, cols, ErrBadRowCount)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opTranspose, rows, cols, ErrBadColCount)
	}
	if rows != cols {
		return nil, fmt.Errorf("%s(%d,%d): %w", opTranspose, rows, cols, ErrUnsupportedShape)
	}

	return TransposeSquare(m, rows)
}
