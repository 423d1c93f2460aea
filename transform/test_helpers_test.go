// Package transform_test contains shared fixtures for transform tests.
//
// Both fixture keys are unimodular (det = ±1), so their inverses are integer.
package transform_test

import (
	"testing"

	"github.com/katalvlaran/matcipher/transform"
	"github.com/stretchr/testify/require"
)

// key3 has det = -1; key3Inv is its exact inverse.
var (
	key3 = [][]int{
		{-1, 0, -1},
		{2, 3, 4},
		{2, 4, 5},
	}
	key3Inv = [][]int{
		{1, 4, -3},
		{2, 3, -2},
		{-2, -4, 3},
	}
)

// key4 is upper bidiagonal with det = 1; key4Inv is its exact inverse.
var (
	key4 = [][]int{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	}
	key4Inv = [][]int{
		{1, -1, 1, -1},
		{0, 1, -1, 1},
		{0, 0, 1, -1},
		{0, 0, 0, 1},
	}
)

func mustKey(t testing.TB, rows [][]int) *transform.Key {
	t.Helper()
	k, err := transform.NewKeyRows(rows)
	require.NoError(t, err)

	return k
}

// naiveMul is the textbook i→j→k product of two flat n×n matrices.
func naiveMul(a, b []int, n int) []int {
	out := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			out[i*n+j] = sum
		}
	}

	return out
}

func ones(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
