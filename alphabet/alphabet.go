// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"sync"
)

// DefaultSymbols is the ordered 77-symbol default alphabet. Position is numeral:
// ' '=0, 'a'=1 … 'z'=26, 'A'=27 … 'Z'=52, '1'=53 … '9'=61, '0'=62, ','=63 … '.'=76.
const DefaultSymbols = ` abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890,?";:()-_[]{}.`

// DefaultLen is the number of symbols in DefaultSymbols.
const DefaultLen = 77

// Operation tags for error wrapping.
const (
	opNew      = "New"
	opIndexOf  = "IndexOf"
	opSymbolAt = "SymbolAt"
)

// Table is the immutable bijection between symbols and numerals.
// The zero value is not usable; construct with New or Default.
type Table struct {
	symbols []rune       // numeral → symbol (position is the numeral)
	index   map[rune]int // symbol → numeral
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// New builds a Table from an ordered list of symbols.
//
// Implementation:
//   - Stage 1: reject an empty alphabet.
//   - Stage 2: walk symbols in order, assigning numeral = position and
//     rejecting repeats.
//
// Errors:
//   - ErrEmptyAlphabet, ErrDuplicateSymbol.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(symbols []rune) (*Table, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyAlphabet)
	}

	t := &Table{
		symbols: make([]rune, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	for i, r := range symbols {
		if prev, dup := t.index[r]; dup {
			return nil, fmt.Errorf("%s: %q at %d and %d: %w", opNew, r, prev, i, ErrDuplicateSymbol)
		}
		t.symbols[i] = r
		t.index[r] = i
	}

	return t, nil
}

// FromString is New over the runes of s.
func FromString(s string) (*Table, error) {
	return New([]rune(s))
}

// Default returns the shared 77-symbol table. It is built once per process.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := FromString(DefaultSymbols)
		if err != nil {
			// DefaultSymbols is a checked constant; failure is a programmer error.
			panic(err)
		}
		defaultTable = t
	})

	return defaultTable
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.symbols) }

// IndexOf returns the numeral of r, or ErrUnknownSymbol.
func (t *Table) IndexOf(r rune) (int, error) {
	i, ok := t.index[r]
	if !ok {
		return 0, fmt.Errorf("%s(%q): %w", opIndexOf, r, ErrUnknownSymbol)
	}

	return i, nil
}

// SymbolAt returns the symbol for numeral i, or ErrUnknownNumeral when i is
// outside [0, Len()).
func (t *Table) SymbolAt(i int) (rune, error) {
	if i < 0 || i >= len(t.symbols) {
		return 0, fmt.Errorf("%s(%d): %w", opSymbolAt, i, ErrUnknownNumeral)
	}

	return t.symbols[i], nil
}

// Contains reports whether r is part of the table.
func (t *Table) Contains(r rune) bool {
	_, ok := t.index[r]
	return ok
}

// Symbols returns a copy of the ordered symbols.
func (t *Table) Symbols() []rune {
	out := make([]rune, len(t.symbols))
	copy(out, t.symbols)

	return out
}

// String returns the alphabet in numeral order.
func (t *Table) String() string { return string(t.symbols) }
