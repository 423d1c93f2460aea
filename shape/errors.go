// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrBadRowCount indicates a non-positive row count.
	ErrBadRowCount = errors.New("shape: row count must be > 0")

	// ErrBadColCount indicates a non-positive column count.
	ErrBadColCount = errors.New("shape: column count must be > 0")

	// ErrDimensionMismatch indicates lengths inconsistent with the declared
	// row/column counts (e.g. len % cols != 0, or len != n*n for a square).
	ErrDimensionMismatch = errors.New("shape: dimension mismatch")

	// ErrUnsupportedShape is returned for rectangular transposition.
	ErrUnsupportedShape = errors.New("shape: rectangular transpose unsupported")
)
