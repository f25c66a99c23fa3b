package filtration

import (
	"context"
	"math"
	"sort"

	"github.com/katalvlaran/cubix/grid"
)

// Filtration is the rank-ordered, possibly pruned sequence of cells of a
// cubical grid, densest first. It is immutable once built.
type Filtration struct {
	g       *grid.Grid
	entries []Entry
	rankOf  []int // cell index → rank, or -1 if pruned
}

// Build scores every cell of g with f and assembles the filtration:
// cells sorted by (density descending, dimension ascending, cell index
// ascending), truncated to keep = ceil((1−opts.Pruning)·total), with
// ranks 0..keep-1 assigned in that order.
//
// Returns ErrNilGrid, ErrNilDensity, ErrInvalidPruning, or any error from
// scoring (ErrDensityEval, ErrBadDensity, ctx cancellation).
//
// Complexity: O(total·(d + log total) + total·cost(f)/workers).
func Build(ctx context.Context, g *grid.Grid, f DensityFunc, opts Options) (*Filtration, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if f == nil {
		return nil, ErrNilDensity
	}
	if opts.Pruning < 0 || opts.Pruning >= 1 {
		return nil, ErrInvalidPruning
	}

	values, err := Score(ctx, g, f, opts.Workers)
	if err != nil {
		return nil, err
	}

	total := g.CellCount()
	dims := make([]int, total)
	order := make([]int, total)
	for idx := range order {
		order[idx] = idx
		cell, cerr := g.Cell(idx)
		if cerr != nil {
			return nil, cerr
		}
		dims[idx] = cell.Dimension()
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if values[i] != values[j] {
			return values[i] > values[j]
		}
		if dims[i] != dims[j] {
			return dims[i] < dims[j]
		}

		return i < j
	})

	keep := keepCount(total, opts.Pruning)
	filt := &Filtration{
		g:       g,
		entries: make([]Entry, keep),
		rankOf:  make([]int, total),
	}
	for idx := range filt.rankOf {
		filt.rankOf[idx] = -1
	}
	for rank := 0; rank < keep; rank++ {
		idx := order[rank]
		cell, cerr := g.Cell(idx)
		if cerr != nil {
			return nil, cerr
		}
		filt.entries[rank] = Entry{Cell: cell, Density: values[idx], Rank: rank}
		filt.rankOf[idx] = rank
	}

	return filt, nil
}

// keepCount applies the documented pruning rounding rule:
// keep = ceil((1−p)·total), computed as total − floor(p·total). The two
// are identical over the reals, but the integer form sidesteps the float
// drift of the 1−p subtraction ((1−0.7)·10 = 3.0000000000000004, which
// would ceil to 4 instead of 3).
func keepCount(total int, p float64) int {
	keep := total - int(math.Floor(p*float64(total)))
	if keep > total {
		keep = total
	}
	if keep < 1 {
		keep = 1
	}

	return keep
}

// Grid returns the underlying grid.
func (f *Filtration) Grid() *grid.Grid { return f.g }

// Len returns the number of retained cells.
func (f *Filtration) Len() int { return len(f.entries) }

// Entry returns the retained entry at the given rank.
// Returns ErrRankRange if rank is outside [0, Len).
func (f *Filtration) Entry(rank int) (Entry, error) {
	if rank < 0 || rank >= len(f.entries) {
		return Entry{}, ErrRankRange
	}

	return f.entries[rank], nil
}

// Entries returns a copy of all retained entries in rank order.
func (f *Filtration) Entries() []Entry {
	entries := make([]Entry, len(f.entries))
	copy(entries, f.entries)

	return entries
}

// Rank returns the rank of the cell with the given cell index, and false
// if the cell was pruned.
func (f *Filtration) Rank(cellIndex int) (int, bool) {
	if cellIndex < 0 || cellIndex >= len(f.rankOf) {
		return 0, false
	}
	r := f.rankOf[cellIndex]

	return r, r >= 0
}
