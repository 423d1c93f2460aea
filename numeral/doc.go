// Package numeral converts text to numeral sequences and back through an
// alphabet.Table.
//
// Inputs that the table cannot map are handled by a Policy:
//
//   - Drop (default): the input is skipped and the conversion continues.
//     Dropped inputs are reported on the injected logger at debug level,
//     since a silently shortened message no longer matches what was sent.
//   - FailFast: the first unmapped input aborts the conversion with an
//     error wrapping alphabet.ErrUnknownSymbol or alphabet.ErrUnknownNumeral.
//
// The same policy applies symmetrically to FromText and ToText. For text made
// only of table symbols, ToText(FromText(s)) == s under either policy.
package numeral
