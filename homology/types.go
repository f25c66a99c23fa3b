// Package homology types, options and sentinel errors.
package homology

import (
	"errors"
	"math"

	"github.com/katalvlaran/cubix/grid"
)

// Sentinel errors for homology operations.
var (
	// ErrNilSource indicates a nil point-cloud source.
	ErrNilSource = errors.New("homology: source is nil")
	// ErrNilDensity indicates a nil density function.
	ErrNilDensity = errors.New("homology: density function is nil")
	// ErrNilFiltration indicates a nil filtration.
	ErrNilFiltration = errors.New("homology: filtration is nil")
	// ErrExtentMismatch indicates Source.Extent() length differs from
	// Source.Dimension().
	ErrExtentMismatch = errors.New("homology: extent does not match source dimension")
	// ErrRankOutOfOrder indicates cells were pushed into the engine out of
	// increasing-rank order. This is a programming-contract violation in
	// the caller, never a data condition.
	ErrRankOutOfOrder = errors.New("homology: cells must be inserted in increasing rank order")
)

// Unbounded marks the death rank of a class that persists through the
// end of the filtration.
const Unbounded = -1

// Source is the core-facing view of a point cloud: its ambient dimension
// and per-axis bounding extremes. cloud.Cloud satisfies it.
type Source interface {
	// Dimension returns the ambient dimension d.
	Dimension() int
	// Extent returns the per-axis (min, max) bounds, one per axis.
	Extent() []grid.Interval
}

// Pair is one persistence pair: a homology class of dimension Dim born
// at filtration rank Birth and dying at rank Death (or Unbounded).
// BirthDensity and DeathDensity are the density values at those ranks so
// presentation layers can render axes in density units; DeathDensity is
// 0 for unbounded pairs (the terminal threshold of the sweep).
type Pair struct {
	Dim          int
	Birth        int
	Death        int
	BirthDensity float64
	DeathDensity float64
}

// Finite reports whether the class dies within the filtration.
func (p Pair) Finite() bool { return p.Death != Unbounded }

// Lifetime returns Death−Birth in rank units, or math.MaxInt for an
// unbounded pair.
func (p Pair) Lifetime() int {
	if !p.Finite() {
		return math.MaxInt
	}

	return p.Death - p.Birth
}

// Persistence returns the class lifetime in density units:
// BirthDensity − DeathDensity (non-negative, densities are
// non-increasing in rank).
func (p Pair) Persistence() float64 {
	return p.BirthDensity - p.DeathDensity
}

// Options contains tunable parameters for Compute.
type Options struct {
	// Resolution is the number of grid subdivisions per axis (n ≥ 1).
	Resolution int
	// Margin expands the bounding box by Margin·range per side per axis.
	Margin float64
	// Pruning is the fraction p ∈ [0, 1) of lowest-density cells to
	// discard before the engine runs.
	Pruning float64
	// Workers is the density-scoring parallelism; < 1 means one per CPU.
	Workers int
	// StrictExtent rejects zero-range axes instead of collapsing them.
	StrictExtent bool
	// Progress, when non-nil, is invoked after each cell insertion with
	// the number of cells processed so far and the total retained count.
	Progress func(done, total int)
}

// DefaultOptions returns Options with default settings:
// Resolution=10, Margin=0.1, no pruning, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Resolution: 10,
		Margin:     0.1,
	}
}
