// Package filtration types, options and sentinel errors.
package filtration

import (
	"errors"

	"github.com/katalvlaran/cubix/grid"
)

// Sentinel errors for filtration operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("filtration: grid is nil")
	// ErrNilDensity indicates a nil density function was passed.
	ErrNilDensity = errors.New("filtration: density function is nil")
	// ErrInvalidPruning indicates a pruning fraction outside [0, 1).
	ErrInvalidPruning = errors.New("filtration: pruning must be in [0, 1)")
	// ErrDensityEval indicates the external density function failed.
	// The run is aborted; no partial filtration is returned.
	ErrDensityEval = errors.New("filtration: density evaluation failed")
	// ErrBadDensity indicates the density function returned NaN, Inf or a
	// negative value where a finite non-negative density is required.
	ErrBadDensity = errors.New("filtration: density must be finite and non-negative")
	// ErrRankRange indicates a rank outside [0, Len).
	ErrRankRange = errors.New("filtration: rank out of range")
)

// DensityFunc is an externally fitted density estimate f: R^d → R≥0.
// Implementations must be safe for concurrent use; Score calls them from
// multiple goroutines. A returned error aborts the whole run.
type DensityFunc func(point []float64) (float64, error)

// Options contains tunable parameters for building a filtration.
type Options struct {
	// Pruning is the fraction p ∈ [0, 1) of lowest-density cells to
	// discard; keep = ceil((1−p)·total) cells survive.
	Pruning float64
	// Workers is the number of scoring goroutines. Values < 1 default to
	// runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns Options with default settings:
// Pruning=0 (keep everything), Workers=0 (one per CPU).
func DefaultOptions() Options {
	return Options{}
}

// Entry is one retained cell of the filtration: the cell, its density at
// the centroid, and its rank in descending-density order.
type Entry struct {
	Cell    grid.Cell
	Density float64
	Rank    int
}
