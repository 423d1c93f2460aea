// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrBadColCount indicates a non-positive window size.
	ErrBadColCount = errors.New("transform: column count must be > 0")

	// ErrDimensionMismatch indicates operands of incompatible lengths.
	ErrDimensionMismatch = errors.New("transform: dimension mismatch")

	// ErrOverflow indicates an intermediate result outside the int range.
	ErrOverflow = errors.New("transform: integer overflow")

	// ErrNotSquare indicates key data that is not n×n.
	ErrNotSquare = errors.New("transform: key is not square")

	// ErrNilKey indicates a nil *Key operand.
	ErrNilKey = errors.New("transform: nil key")

	// ErrSingular indicates an encoding key with zero determinant.
	ErrSingular = errors.New("transform: singular key")

	// ErrNotInverse indicates that enc·dec is not the identity.
	ErrNotInverse = errors.New("transform: decode key is not the inverse of encode key")
)
