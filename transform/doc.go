// Package transform implements the linear step of the cipher: an
// accumulate-and-emit multiply over flat row-major integer matrices.
//
// Multiply(key, msg, cols) walks key and msg together, summing elementwise
// products and emitting one scalar per cols-sized window. It is not a general
// matrix product; paired with a transposed message tile it computes one
// row of K·M per call, which is what Apply does:
//
//	Mᵀ       := shape.Transpose(M, n, n)            // windows = columns of M
//	row_i(C) := Multiply(repeat(row_i(K), n), Mᵀ, n)
//
// Keys are caller-owned square matrices. Decoding needs the true inverse of
// the encoding key; this package never inverts a matrix. KeyPair.Verify
// offers an opt-in check that enc·dec is the identity.
package transform
