package cipher_test

import (
	"testing"

	"github.com/katalvlaran/matcipher/transform"
	"github.com/stretchr/testify/require"
)

// Unimodular fixture keys with exact integer inverses.
var (
	key3    = [][]int{{-1, 0, -1}, {2, 3, 4}, {2, 4, 5}}
	key3Inv = [][]int{{1, 4, -3}, {2, 3, -2}, {-2, -4, 3}}

	key4    = [][]int{{1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 1, 1}, {0, 0, 0, 1}}
	key4Inv = [][]int{{1, -1, 1, -1}, {0, 1, -1, 1}, {0, 0, 1, -1}, {0, 0, 0, 1}}
)

const longMessage = "Today is my favourite day. Tommorow will be another great day."

func mustPair(t testing.TB, enc, dec [][]int) *transform.KeyPair {
	t.Helper()
	e, err := transform.NewKeyRows(enc)
	require.NoError(t, err)
	d, err := transform.NewKeyRows(dec)
	require.NoError(t, err)
	p, err := transform.NewKeyPair(e, d)
	require.NoError(t, err)

	return p
}
