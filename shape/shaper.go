// SPDX-License-Identifier: MIT

package shape

// Shaper binds the shaping operations to a configured row count, so
// alternate dimensions can be used side by side.
type Shaper struct {
	rows int
}

// New returns a Shaper for rowCount rows, or ErrBadRowCount.
func New(rowCount int) (*Shaper, error) {
	if rowCount <= 0 {
		return nil, ErrBadRowCount
	}

	return &Shaper{rows: rowCount}, nil
}

// RowCount returns the configured row count.
func (s *Shaper) RowCount() int { return s.rows }

// Pad pads nums to a multiple of the row count.
func (s *Shaper) Pad(nums []int) ([]int, error) { return Pad(nums, s.rows) }

// Reshape pads nums and cuts it into rows of cols elements.
func (s *Shaper) Reshape(nums []int, cols int) ([][]int, error) {
	padded, err := s.Pad(nums)
	if err != nil {
		return nil, err
	}

	return Reshape(padded, cols)
}

// TransposeSquare transposes a flat RowCount×RowCount matrix in place.
func (s *Shaper) TransposeSquare(m []int) ([]int, error) { return TransposeSquare(m, s.rows) }
