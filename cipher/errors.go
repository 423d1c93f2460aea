// SPDX-License-Identifier: MIT

package cipher

import "errors"

var (
	// ErrNilKeyPair is returned by New without a key pair.
	ErrNilKeyPair = errors.New("cipher: nil key pair")

	// ErrBadLength indicates a message length outside the decoded numerals.
	ErrBadLength = errors.New("cipher: length out of range")
)
