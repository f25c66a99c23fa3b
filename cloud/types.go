// Package cloud sentinel errors and shared RNG policy.
package cloud

import (
	"errors"
	"math/rand"
)

// Sentinel errors for cloud operations.
var (
	// ErrNoData indicates empty input data or a non-positive sample count.
	ErrNoData = errors.New("cloud: data must contain at least one axis and one point")
	// ErrRagged indicates axis rows of differing lengths.
	ErrRagged = errors.New("cloud: all axes must have the same number of points")
	// ErrPointIndex indicates a point index out of range.
	ErrPointIndex = errors.New("cloud: point index out of range")
	// ErrBadShape indicates a non-positive radius parameter.
	ErrBadShape = errors.New("cloud: shape radius must be positive")
	// ErrCSV indicates malformed CSV input.
	ErrCSV = errors.New("cloud: malformed CSV input")
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 42

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
