// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"
)

const (
	opNewKey     = "NewKey"
	opNewKeyPair = "NewKeyPair"
	opValidate   = "KeyPair.Validate"
	opKeyAt      = "Key.At"
)

// Key is a square n×n integer matrix in flat row-major order.
// A Key is never mutated after construction.
type Key struct {
	n    int
	data []int
}

// NewKey copies data into an n×n Key.
//
// Errors:
//   - ErrNotSquare when n <= 0 or len(data) != n*n.
func NewKey(data []int, n int) (*Key, error) {
	if n <= 0 || len(data) != n*n {
		return nil, fmt.Errorf("%s: %d values for n=%d: %w", opNewKey, len(data), n, ErrNotSquare)
	}
	buf := make([]int, len(data))
	copy(buf, data)

	return &Key{n: n, data: buf}, nil
}

// NewKeyRows builds a Key from row slices, which must all have len(rows) entries.
func NewKeyRows(rows [][]int) (*Key, error) {
	n := len(rows)
	flat := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opNewKey, i, len(row), n, ErrNotSquare)
		}
		flat = append(flat, row...)
	}

	return NewKey(flat, n)
}

// Dim returns n.
func (k *Key) Dim() int { return k.n }

// At returns the entry at (i, j).
func (k *Key) At(i, j int) (int, error) {
	if i < 0 || i >= k.n || j < 0 || j >= k.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", opKeyAt, i, j, ErrDimensionMismatch)
	}

	return k.data[i*k.n+j], nil
}

// Row returns a copy of row i. It panics on an out-of-range row, like slice indexing.
func (k *Key) Row(i int) []int {
	out := make([]int, k.n)
	copy(out, k.data[i*k.n:(i+1)*k.n])

	return out
}

// Data returns a copy of the flat row-major entries.
func (k *Key) Data() []int {
	out := make([]int, len(k.data))
	copy(out, k.data)

	return out
}

// String prints the key one row per line.
func (k *Key) String() string {
	var sb strings.Builder
	for i := 0; i < k.n; i++ {
		fmt.Fprintln(&sb, k.data[i*k.n:(i+1)*k.n])
	}

	return sb.String()
}

// KeyPair holds an encoding key and the caller-supplied decoding key
// (its inverse). Both must share the same dimension.
type KeyPair struct {
	Encode *Key
	Decode *Key
}

// NewKeyPair pairs enc and dec.
//
// Errors:
//   - ErrNilKey when either key is nil.
//   - ErrNotSquare, ErrDimensionMismatch as in Validate.
func NewKeyPair(enc, dec *Key) (*KeyPair, error) {
	p := &KeyPair{Encode: enc, Decode: dec}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewKeyPair, err)
	}

	return p, nil
}

// Validate checks the structure of p without touching its values. Pairs
// assembled by hand (or from zero Keys) go through the same checks as
// NewKeyPair.
//
// Errors:
//   - ErrNilKey when p or either key is nil.
//   - ErrNotSquare when a key is empty or its data is not n×n.
//   - ErrDimensionMismatch when the dimensions differ.
func (p *KeyPair) Validate() error {
	if p == nil || p.Encode == nil || p.Decode == nil {
		return fmt.Errorf("%s: %w", opValidate, ErrNilKey)
	}
	for _, k := range []*Key{p.Encode, p.Decode} {
		if k.n <= 0 || len(k.data) != k.n*k.n {
			return fmt.Errorf("%s: %d values for n=%d: %w", opValidate, len(k.data), k.n, ErrNotSquare)
		}
	}
	if p.Encode.n != p.Decode.n {
		return fmt.Errorf("%s: %d vs %d: %w", opValidate, p.Encode.n, p.Decode.n, ErrDimensionMismatch)
	}

	return nil
}

// Dim returns the shared key dimension.
func (p *KeyPair) Dim() int { return p.Encode.n }
