// Package grid builds a regular cubical lattice around a bounding box in
// R^d and enumerates every cubical cell of every dimension 0..d.
//
// What:
//
//   - Build computes a per-axis bounding box (optionally expanded by a
//     margin fraction) and partitions each axis into n equal intervals.
//   - Cells use the interleaved-coordinate encoding: one integer
//     coordinate in [0, 2n] per axis, even values naming lattice points
//     and odd values naming the interval between two adjacent points.
//     A cell's dimension is the number of odd axes.
//   - Every cell is addressed by a dense integer index (mixed-radix over
//     its coordinate tuple); Index and Cell convert both ways.
//   - Faces returns the 2k codimension-1 faces of a k-cell: for each odd
//     axis, the cells obtained by collapsing that coordinate to either
//     endpoint.
//
// Why:
//
//   - Cubical filtrations: the cell set is the raw material for a
//     density-ordered filtration (package filtration).
//   - Incidence structure: Faces drives boundary-matrix reduction
//     (package homology).
//
// Complexity:
//
//   - Build:        O(d) time and memory (cells are never materialized).
//   - Cell / Index: O(d).
//   - Centroid:     O(d).
//   - Faces:        O(k·d) for a k-cell.
//
// Degenerate axes (zero range before the margin is applied) collapse to
// a single lattice point with no intervals, so the effective dimension
// drops; set Options.StrictExtent to reject them with
// ErrDegenerateExtent instead.
//
// Errors:
//
//   - ErrInvalidResolution: resolution < 1.
//   - ErrInvalidMargin: negative margin.
//   - ErrEmptyExtent: no axes.
//   - ErrInvalidExtent: an axis with Min > Max, NaN or Inf.
//   - ErrDegenerateExtent: zero-range axis under StrictExtent.
//   - ErrCellIndex: cell index out of range.
//   - ErrCellCoords: coordinate tuple of wrong length or out of range.
package grid
