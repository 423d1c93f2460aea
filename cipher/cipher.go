// SPDX-License-Identifier: MIT

package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcipher/numeral"
	"github.com/katalvlaran/matcipher/shape"
	"github.com/katalvlaran/matcipher/transform"
)

const (
	opNew          = "New"
	opEncode       = "Encode"
	opDecode       = "Decode"
	opDecodeLength = "DecodeLength"
)

// Cipher encodes text with a key pair. Build it with New.
type Cipher struct {
	pair  *transform.KeyPair
	num   *numeral.Numeralizer
	tiles *shape.Shaper // row count n*n: one row per message matrix
	tile  int
	opts  Options
}

// New returns a Cipher for pair.
//
// Errors:
//   - ErrNilKeyPair.
//   - transform.ErrNotSquare / transform.ErrDimensionMismatch for a
//     malformed pair built without transform.NewKeyPair.
//   - transform.ErrSingular / transform.ErrNotInverse under WithKeyCheck.
func New(pair *transform.KeyPair, opts ...Option) (*Cipher, error) {
	if pair == nil || pair.Encode == nil || pair.Decode == nil {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNilKeyPair)
	}
	if err := pair.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	o := gatherOptions(opts...)
	if o.keyCheck {
		if err := pair.Verify(); err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
	}

	num, err := numeral.New(o.table, numeral.WithPolicy(o.policy), numeral.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	n := pair.Dim()
	tiles, err := shape.New(n * n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &Cipher{pair: pair, num: num, tiles: tiles, tile: n * n, opts: o}, nil
}

// Dim returns the key dimension n.
func (c *Cipher) Dim() int { return c.pair.Dim() }

// Numeralizer returns the text↔numeral stage used by c.
func (c *Cipher) Numeralizer() *numeral.Numeralizer { return c.num }

// Encode numeralizes text and runs EncodeNumerals.
func (c *Cipher) Encode(text string) ([]int, error) {
	nums, err := c.num.FromText(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}

	return c.EncodeNumerals(nums)
}

// EncodeNumerals pads nums to whole n×n tiles and multiplies each tile by the
// encoding key. The result has len(Pad(nums, n*n)) elements.
//
// Complexity: O(len · n).
func (c *Cipher) EncodeNumerals(nums []int) ([]int, error) {
	tiles, err := c.tiles.Reshape(nums, c.tile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}
	out, err := c.applyTiles(c.pair.Encode, tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}
	c.opts.logger.Debug("encoded message",
		"numerals", len(nums), "padding", len(out)-len(nums), "tiles", len(tiles))

	return out, nil
}

// DecodeNumerals multiplies each n×n tile of encoded by the decoding key.
//
// Errors:
//   - shape.ErrDimensionMismatch when len(encoded) is not a whole number of tiles.
func (c *Cipher) DecodeNumerals(encoded []int) ([]int, error) {
	tiles, err := shape.Reshape(encoded, c.tile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}
	out, err := c.applyTiles(c.pair.Decode, tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	return out, nil
}

// Decode recovers text from encoded, including pad symbols unless
// WithTrimPadding is set.
func (c *Cipher) Decode(encoded []int) (string, error) {
	nums, err := c.DecodeNumerals(encoded)
	if err != nil {
		return "", err
	}
	text, err := c.num.ToText(nums)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opDecode, err)
	}
	if c.opts.trimPadding {
		text = c.trimPad(text)
	}

	return text, nil
}

// DecodeLength decodes encoded and keeps exactly the first length numerals,
// dropping padding without touching genuine trailing symbols.
//
// Errors:
//   - ErrBadLength when length is negative or exceeds the decoded numerals.
func (c *Cipher) DecodeLength(encoded []int, length int) (string, error) {
	nums, err := c.DecodeNumerals(encoded)
	if err != nil {
		return "", err
	}
	if length < 0 || length > len(nums) {
		return "", fmt.Errorf("%s: %d of %d: %w", opDecodeLength, length, len(nums), ErrBadLength)
	}
	text, err := c.num.ToText(nums[:length])
	if err != nil {
		return "", fmt.Errorf("%s: %w", opDecodeLength, err)
	}

	return text, nil
}

// applyTiles applies key to every n×n tile and flattens the results.
func (c *Cipher) applyTiles(key *transform.Key, tiles [][]int) ([]int, error) {
	res := make([][]int, len(tiles))
	var err error
	for i, tile := range tiles {
		if res[i], err = transform.Apply(key, tile); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
	}

	return shape.Flatten(res)
}

// trimPad removes trailing occurrences of the numeral-0 symbol.
func (c *Cipher) trimPad(text string) string {
	pad, err := c.num.Table().SymbolAt(0)
	if err != nil {
		return text
	}

	return strings.TrimRight(text, string(pad))
}
