// Package grid defines core types, options, and sentinel errors for the
// grid subpackage of github.com/katalvlaran/cubix.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidResolution indicates a grid resolution below 1.
	ErrInvalidResolution = errors.New("grid: resolution must be at least 1")
	// ErrInvalidMargin indicates a negative margin fraction.
	ErrInvalidMargin = errors.New("grid: margin must be non-negative")
	// ErrEmptyExtent indicates an extent covering no axes.
	ErrEmptyExtent = errors.New("grid: extent must cover at least one axis")
	// ErrInvalidExtent indicates an axis interval with Min > Max or a
	// non-finite bound.
	ErrInvalidExtent = errors.New("grid: axis extent is invalid")
	// ErrDegenerateExtent indicates a zero-range axis under StrictExtent.
	ErrDegenerateExtent = errors.New("grid: axis extent has zero range")
	// ErrCellIndex indicates a cell index outside [0, CellCount).
	ErrCellIndex = errors.New("grid: cell index out of range")
	// ErrCellCoords indicates a coordinate tuple of wrong length or with a
	// coordinate outside the lattice.
	ErrCellCoords = errors.New("grid: cell coordinates out of range")
)

// Interval is a closed interval [Min, Max] on one axis.
type Interval struct {
	Min, Max float64
}

// Range returns Max - Min.
func (iv Interval) Range() float64 { return iv.Max - iv.Min }

// Options contains tunable parameters for grid construction.
type Options struct {
	// Resolution is the number of equal subdivisions per axis (n ≥ 1).
	Resolution int
	// Margin expands the bounding box by Margin·range on each side of
	// every axis. Ex: 0.1 yields a box 10% larger than the cloud extent.
	Margin float64
	// StrictExtent rejects zero-range axes with ErrDegenerateExtent
	// instead of collapsing them to a single lattice point.
	StrictExtent bool
}

// DefaultOptions returns Options with default settings:
// Resolution=10, Margin=0.1, StrictExtent=false.
func DefaultOptions() Options {
	return Options{
		Resolution: 10,
		Margin:     0.1,
	}
}

// Cell is a cubical cell of the lattice in interleaved coordinates:
// Coords[i] is in [0, 2n]; even values fix a lattice point on axis i,
// odd values span the interval between two adjacent lattice points.
// Two cells are equal iff their coordinate tuples match, which is
// equivalent to their Index values matching on the same grid.
type Cell struct {
	// Index is the dense mixed-radix index of the cell on its grid.
	Index int
	// Coords is the interleaved coordinate tuple, one entry per axis.
	Coords []int
}

// Dimension returns the geometric dimension of the cell: the number of
// axes on which it spans an interval (odd coordinates).
func (c Cell) Dimension() int {
	var k int
	for _, x := range c.Coords {
		if x&1 == 1 {
			k++
		}
	}

	return k
}
