package alphabet_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/matcipher/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Size checks the default table carries exactly 77 symbols.
func TestDefault_Size(t *testing.T) {
	tbl := alphabet.Default()
	assert.Equal(t, alphabet.DefaultLen, tbl.Len())
	assert.Equal(t, alphabet.DefaultSymbols, tbl.String())
}

// TestDefault_KnownNumerals pins numerals used throughout the cipher tests.
func TestDefault_KnownNumerals(t *testing.T) {
	tbl := alphabet.Default()

	cases := []struct {
		sym rune
		idx int
	}{
		{' ', 0}, {'a', 1}, {'d', 4}, {'o', 15}, {'z', 26},
		{'A', 27}, {'T', 46}, {'Z', 52}, {'1', 53}, {'9', 61},
		{'0', 62}, {',', 63}, {'?', 64}, {'"', 65}, {'.', 76},
	}
	for _, tc := range cases {
		got, err := tbl.IndexOf(tc.sym)
		require.NoError(t, err)
		assert.Equalf(t, tc.idx, got, "IndexOf(%q)", tc.sym)

		back, err := tbl.SymbolAt(tc.idx)
		require.NoError(t, err)
		assert.Equalf(t, tc.sym, back, "SymbolAt(%d)", tc.idx)
	}
}

// TestDefault_Bijection walks both directions over the whole table.
func TestDefault_Bijection(t *testing.T) {
	tbl := alphabet.Default()

	for i := 0; i < tbl.Len(); i++ {
		r, err := tbl.SymbolAt(i)
		require.NoError(t, err)
		j, err := tbl.IndexOf(r)
		require.NoError(t, err)
		assert.Equal(t, i, j)
	}
	for _, r := range alphabet.DefaultSymbols {
		i, err := tbl.IndexOf(r)
		require.NoError(t, err)
		back, err := tbl.SymbolAt(i)
		require.NoError(t, err)
		assert.Equal(t, r, back)
	}
}

// TestTable_LookupErrors ensures misses are reported as sentinels, not panics.
func TestTable_LookupErrors(t *testing.T) {
	tbl := alphabet.Default()

	_, err := tbl.IndexOf('#')
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
	assert.False(t, tbl.Contains('#'))

	_, err = tbl.SymbolAt(-1)
	assert.ErrorIs(t, err, alphabet.ErrUnknownNumeral)

	_, err = tbl.SymbolAt(alphabet.DefaultLen)
	assert.ErrorIs(t, err, alphabet.ErrUnknownNumeral)
}

// TestNew_Validation covers empty and duplicate alphabets.
func TestNew_Validation(t *testing.T) {
	_, err := alphabet.New(nil)
	assert.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)

	_, err = alphabet.FromString("abca")
	assert.ErrorIs(t, err, alphabet.ErrDuplicateSymbol)

	tbl, err := alphabet.FromString("xyz")
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
	i, err := tbl.IndexOf('z')
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

// TestTable_SymbolsIsCopy verifies callers cannot mutate the table.
func TestTable_SymbolsIsCopy(t *testing.T) {
	tbl, err := alphabet.FromString("ab")
	require.NoError(t, err)

	syms := tbl.Symbols()
	syms[0] = 'z'

	r, err := tbl.SymbolAt(0)
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
}

// TestDefault_ConcurrentReads shares the default table across goroutines.
func TestDefault_ConcurrentReads(t *testing.T) {
	tbl := alphabet.Default()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < tbl.Len(); i++ {
				r, err := tbl.SymbolAt(i)
				assert.NoError(t, err)
				j, err := tbl.IndexOf(r)
				assert.NoError(t, err)
				assert.Equal(t, i, j)
			}
		}()
	}
	wg.Wait()
	assert.Same(t, tbl, alphabet.Default())
}
