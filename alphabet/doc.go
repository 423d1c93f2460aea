// Package alphabet defines the correspondence table between message symbols
// and their integer numerals.
//
// What is a correspondence table?
//
//	An ordered alphabet fixes a bijection: the symbol at position i has
//	numeral i, and every numeral names exactly one symbol. The cipher
//	pipeline (numeral → shape → transform) only ever sees the numerals.
//
// Key features:
//   - Default 77-symbol table: space, a–z, A–Z, 1–9, 0 and , ? " ; : ( ) - _ [ ] { } .
//   - O(1) lookups in both directions (two maps built once).
//   - Immutable after New; a *Table may be shared across goroutines.
//   - Lookups never panic: ErrUnknownSymbol / ErrUnknownNumeral instead.
//
// Usage:
//
//	import "github.com/katalvlaran/matcipher/alphabet"
//
//	t := alphabet.Default()
//	i, err := t.IndexOf('T') // 46
//	r, err := t.SymbolAt(15) // 'o'
//
// Custom alphabets are built with New and must be non-empty with pairwise
// distinct symbols.
package alphabet
