package grid

import (
	"math"
)

// Grid is a d-dimensional cubical lattice over an axis-aligned bounding
// box, with Resolution equal subdivisions per axis. It is immutable once
// built; cells are enumerated on demand rather than materialized.
type Grid struct {
	dim   int
	res   int
	box   []Interval // expanded bounding box, one interval per axis
	step  []float64  // axis step (box range / res), 0 on degenerate axes
	radix []int      // coordinates per axis: 2·res+1, or 1 on degenerate axes
	place []int      // mixed-radix place values, place[dim-1] == 1
	total int        // product of radix: total number of cells
}

// Build constructs a Grid covering extent. Each axis interval is expanded
// by opts.Margin·range on both sides and divided into opts.Resolution
// equal sub-intervals. A zero-range axis collapses to a single lattice
// point (no intervals) unless opts.StrictExtent is set.
//
// Returns ErrInvalidResolution, ErrInvalidMargin, ErrEmptyExtent,
// ErrInvalidExtent or ErrDegenerateExtent on bad input.
//
// Complexity: O(d) time and memory.
func Build(extent []Interval, opts Options) (*Grid, error) {
	if opts.Resolution < 1 {
		return nil, ErrInvalidResolution
	}
	if opts.Margin < 0 {
		return nil, ErrInvalidMargin
	}
	if len(extent) == 0 {
		return nil, ErrEmptyExtent
	}

	d := len(extent)
	g := &Grid{
		dim:   d,
		res:   opts.Resolution,
		box:   make([]Interval, d),
		step:  make([]float64, d),
		radix: make([]int, d),
		place: make([]int, d),
		total: 1,
	}
	for i, iv := range extent {
		if math.IsNaN(iv.Min) || math.IsNaN(iv.Max) ||
			math.IsInf(iv.Min, 0) || math.IsInf(iv.Max, 0) || iv.Min > iv.Max {
			return nil, ErrInvalidExtent
		}
		r := iv.Range()
		if r == 0 {
			if opts.StrictExtent {
				return nil, ErrDegenerateExtent
			}
			// Constant axis: a single lattice point, no intervals.
			g.box[i] = iv
			g.radix[i] = 1
			continue
		}
		g.box[i] = Interval{
			Min: iv.Min - opts.Margin*r,
			Max: iv.Max + opts.Margin*r,
		}
		g.step[i] = g.box[i].Range() / float64(opts.Resolution)
		g.radix[i] = 2*opts.Resolution + 1
	}
	// Place values for the mixed-radix cell index, last axis fastest.
	for i := d - 1; i >= 0; i-- {
		g.place[i] = g.total
		g.total *= g.radix[i]
	}

	return g, nil
}

// Dimension returns the number of ambient axes d.
func (g *Grid) Dimension() int { return g.dim }

// Resolution returns the number of subdivisions per (non-degenerate) axis.
func (g *Grid) Resolution() int { return g.res }

// Box returns a copy of the expanded bounding box.
func (g *Grid) Box() []Interval {
	box := make([]Interval, g.dim)
	copy(box, g.box)

	return box
}

// CellCount returns the total number of cubical cells of all dimensions.
func (g *Grid) CellCount() int { return g.total }

// Degenerate reports whether axis i collapsed to a single lattice point.
func (g *Grid) Degenerate(i int) bool { return g.radix[i] == 1 }

// Ticks returns the lattice coordinates of axis i: Resolution+1 equally
// spaced values across the expanded box (a single value on a degenerate
// axis). Intended for presentation layers that render the mesh.
//
// Complexity: O(n) time and memory.
func (g *Grid) Ticks(i int) []float64 {
	if g.Degenerate(i) {
		return []float64{g.box[i].Min}
	}
	ticks := make([]float64, g.res+1)
	for j := 0; j <= g.res; j++ {
		ticks[j] = g.box[i].Min + float64(j)*g.step[i]
	}

	return ticks
}
