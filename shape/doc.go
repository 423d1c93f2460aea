// Package shape turns numeral sequences into row-major message matrices.
//
// Three operations make up the shaper:
//
//   - Pad appends the residue (rowCount - len%rowCount) % rowCount of zero
//     numerals, so a length that is already a multiple is left untouched.
//   - Reshape cuts a padded sequence into consecutive rows of cols elements
//     and fails with ErrDimensionMismatch instead of truncating.
//   - TransposeSquare swaps symmetric off-diagonal pairs of a flat n×n
//     matrix in place, walking the diagonals. It is its own inverse.
//
// Rectangular transposition is not supported: Transpose reports
// ErrUnsupportedShape when rows != cols.
//
// Complexity: Pad and Reshape are O(n); TransposeSquare is O(n²) in the
// matrix side, with no allocation.
package shape
