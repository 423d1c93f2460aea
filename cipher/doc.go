// Package cipher wires the alphabet, numeral, shape and transform stages into
// the encode and decode pipelines of the matrix text cipher.
//
// Encode:
//
//	text → numerals → Pad to n·n → tiles of n·n → K·tile per tile → encoded
//
// Decode:
//
//	encoded → tiles of n·n → K⁻¹·tile per tile → numerals → text
//
// n is the key dimension (the message-matrix row count, 4 by default in
// config). Each tile is an n×n message matrix read along rows; transform.Apply
// transposes it and runs the accumulate-and-emit multiply per key row.
//
// Decoding is only correct with the true inverse of the encoding key. The
// cipher never inverts a key; WithKeyCheck verifies the supplied pair up
// front instead of producing garbage later.
//
// A Cipher is immutable after New and safe for concurrent use.
package cipher
