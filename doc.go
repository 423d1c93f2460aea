// Package matcipher is a linear-algebra text cipher: messages become integer
// numerals, numerals become square message matrices, and each matrix is
// multiplied by a caller-supplied invertible key.
//
// What is in the box?
//
//	A small pipeline split into focused packages:
//		• alphabet/  — the 77-symbol correspondence table (symbol ↔ numeral)
//		• numeral/   — text ↔ numerals with a drop or fail-fast policy
//		• shape/     — padding, reshaping and in-place square transposition
//		• transform/ — accumulate-and-emit multiply, keys, inverse checks
//		• cipher/    — Encode / Decode pipelines over the stages above
//		• envelope/  — KSUID-tagged YAML envelopes with the exact length
//		• config/    — YAML configuration for the matcipher command
//
// Pipeline:
//
//	"Toda" → [46 15 4 1] → pad → n×n tiles → K·M per tile → encoded
//	encoded → K⁻¹·C per tile → numerals → "Toda"
//
// Keys are never inverted here. Supply the encoding key and its exact inverse;
// KeyPair.Verify (or cipher.WithKeyCheck) confirms the pair before use.
//
//	go install github.com/katalvlaran/matcipher/cmd/matcipher@latest
package matcipher
