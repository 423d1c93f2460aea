// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcipher/alphabet"
)

const (
	opFromText = "FromText"
	opToText   = "ToText"
)

// Numeralizer maps text to numerals and back under a fixed Policy.
// It holds no mutable state and may be shared across goroutines.
type Numeralizer struct {
	table *alphabet.Table
	opts  Options
}

// New returns a Numeralizer over table.
func New(table *alphabet.Table, opts ...Option) (*Numeralizer, error) {
	if table == nil {
		return nil, ErrNilTable
	}

	return &Numeralizer{table: table, opts: gatherOptions(opts...)}, nil
}

// Table returns the underlying correspondence table.
func (n *Numeralizer) Table() *alphabet.Table { return n.table }

// Policy returns the configured unmapped-input policy.
func (n *Numeralizer) Policy() Policy { return n.opts.policy }

// FromText returns the numeral of every character of text, in order.
//
// Behavior:
//   - Drop: unmapped characters are skipped (and logged at debug level).
//   - FailFast: the first unmapped character returns an error wrapping
//     alphabet.ErrUnknownSymbol with its rune position.
//
// Complexity: O(len(text)).
func (n *Numeralizer) FromText(text string) ([]int, error) {
	out := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		i, err := n.table.IndexOf(r)
		if err != nil {
			if n.opts.policy == FailFast {
				return nil, fmt.Errorf("%s: position %d: %w", opFromText, pos, err)
			}
			n.opts.logger.Debug("dropping unmapped symbol", "symbol", string(r), "position", pos)
		} else {
			out = append(out, i)
		}
		pos++
	}

	return out, nil
}

// ToText returns the symbols named by nums, in order. Numerals outside the
// table follow the same policy as FromText, wrapping alphabet.ErrUnknownNumeral.
//
// Complexity: O(len(nums)).
func (n *Numeralizer) ToText(nums []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(nums))
	for pos, v := range nums {
		r, err := n.table.SymbolAt(v)
		if err != nil {
			if n.opts.policy == FailFast {
				return "", fmt.Errorf("%s: position %d: %w", opToText, pos, err)
			}
			n.opts.logger.Debug("dropping unmapped numeral", "numeral", v, "position", pos)

			continue
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}
