// SPDX-License-Identifier: MIT

package alphabet

import "errors"

var (
	// ErrEmptyAlphabet is returned by New when no symbols are given.
	ErrEmptyAlphabet = errors.New("alphabet: empty alphabet")

	// ErrDuplicateSymbol is returned by New when a symbol appears twice,
	// which would break the index↔symbol bijection.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrUnknownSymbol indicates a symbol that is not part of the table.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrUnknownNumeral indicates a numeral outside [0, Len()).
	ErrUnknownNumeral = errors.New("alphabet: unknown numeral")
)
