package numeral_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/matcipher/alphabet"
	"github.com/katalvlaran/matcipher/numeral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T, opts ...numeral.Option) *numeral.Numeralizer {
	t.Helper()
	n, err := numeral.New(alphabet.Default(), opts...)
	require.NoError(t, err)

	return n
}

// TestNew_NilTable rejects a missing table.
func TestNew_NilTable(t *testing.T) {
	_, err := numeral.New(nil)
	assert.ErrorIs(t, err, numeral.ErrNilTable)
}

// TestFromText_Toda pins the numerals of the reference word.
func TestFromText_Toda(t *testing.T) {
	n := newDefault(t)

	got, err := n.FromText("Toda")
	require.NoError(t, err)
	assert.Equal(t, []int{46, 15, 4, 1}, got)
	assert.Equal(t, numeral.Drop, n.Policy())
}

// TestFromText_Policies covers drop-and-continue versus fail-fast.
func TestFromText_Policies(t *testing.T) {
	t.Run("drop", func(t *testing.T) {
		n := newDefault(t)
		got, err := n.FromText("a#b€c")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("fail", func(t *testing.T) {
		n := newDefault(t, numeral.WithPolicy(numeral.FailFast))
		got, err := n.FromText("a#b")
		assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
		assert.Contains(t, err.Error(), "position 1")
		assert.Nil(t, got)
	})
}

// TestToText_Policies applies the same policy to out-of-range numerals.
func TestToText_Policies(t *testing.T) {
	t.Run("drop", func(t *testing.T) {
		n := newDefault(t)
		got, err := n.ToText([]int{46, -3, 15, 77, 4, 1})
		require.NoError(t, err)
		assert.Equal(t, "Toda", got)
	})

	t.Run("fail", func(t *testing.T) {
		n := newDefault(t, numeral.WithPolicy(numeral.FailFast))
		_, err := n.ToText([]int{46, 15, 500})
		assert.ErrorIs(t, err, alphabet.ErrUnknownNumeral)
		assert.Contains(t, err.Error(), "position 2")
	})
}

// TestRoundTrip_AllSymbols checks ToText(FromText(s)) == s for table-only text.
func TestRoundTrip_AllSymbols(t *testing.T) {
	for _, p := range []numeral.Policy{numeral.Drop, numeral.FailFast} {
		n := newDefault(t, numeral.WithPolicy(p))
		for _, text := range []string{
			"",
			alphabet.DefaultSymbols,
			"Today is my favourite day. Tommorow will be another great day.",
			`"Quoted" (text) [with] {all}: brackets; 1234567890?`,
		} {
			nums, err := n.FromText(text)
			require.NoError(t, err)
			back, err := n.ToText(nums)
			require.NoError(t, err)
			assert.Equal(t, text, back)
		}
	}
}

// TestFromText_LogsDrops verifies dropped symbols reach the injected logger.
func TestFromText_LogsDrops(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := newDefault(t, numeral.WithLogger(logger))

	_, err := n.FromText("a#")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dropping unmapped symbol")
	assert.Contains(t, buf.String(), "position=1")
}

// TestParsePolicy maps config spellings.
func TestParsePolicy(t *testing.T) {
	cases := map[string]numeral.Policy{
		"":          numeral.Drop,
		"drop":      numeral.Drop,
		"SKIP":      numeral.Drop,
		"fail":      numeral.FailFast,
		"fail-fast": numeral.FailFast,
	}
	for in, want := range cases {
		got, err := numeral.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := numeral.ParsePolicy("explode")
	assert.ErrorIs(t, err, numeral.ErrBadPolicy)

	assert.Equal(t, "drop", numeral.Drop.String())
	assert.Equal(t, "fail", numeral.FailFast.String())
}

// TestOptions_PanicOnNonsense mirrors the programmer-error contract.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { numeral.WithPolicy(numeral.Policy(9)) })
	assert.Panics(t, func() { numeral.WithLogger(nil) })
}
