// SPDX-License-Identifier: MIT

package numeral

import "errors"

var (
	// ErrNilTable is returned by New when no table is supplied.
	ErrNilTable = errors.New("numeral: nil table")

	// ErrBadPolicy is returned by ParsePolicy for an unrecognised name.
	ErrBadPolicy = errors.New("numeral: unknown policy")
)
