package cloud

import (
	"github.com/katalvlaran/cubix/grid"
)

// Cloud is a finite set of N points in R^d, stored as d axis rows of N
// values each. It is immutable once built.
type Cloud struct {
	data [][]float64
}

// New constructs a Cloud from d axis rows of equal length.
// The input is deep-copied to ensure immutability.
// Returns ErrNoData or ErrRagged.
//
// Complexity: O(d·N) time and memory.
func New(data [][]float64) (Cloud, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return Cloud{}, ErrNoData
	}
	n := len(data[0])
	rows := make([][]float64, len(data))
	for i, axis := range data {
		if len(axis) != n {
			return Cloud{}, ErrRagged
		}
		rows[i] = make([]float64, n)
		copy(rows[i], axis)
	}

	return Cloud{data: rows}, nil
}

// Dimension returns the ambient dimension d.
func (c Cloud) Dimension() int { return len(c.data) }

// Points returns the number of points N.
func (c Cloud) Points() int {
	if len(c.data) == 0 {
		return 0
	}

	return len(c.data[0])
}

// Extent returns the per-axis (min, max) bounds of the data.
// Together with Dimension it satisfies homology.Source.
//
// Complexity: O(d·N).
func (c Cloud) Extent() []grid.Interval {
	extent := make([]grid.Interval, len(c.data))
	for i, axis := range c.data {
		iv := grid.Interval{Min: axis[0], Max: axis[0]}
		for _, v := range axis[1:] {
			if v < iv.Min {
				iv.Min = v
			}
			if v > iv.Max {
				iv.Max = v
			}
		}
		extent[i] = iv
	}

	return extent
}

// Data returns a deep copy of the axis rows.
func (c Cloud) Data() [][]float64 {
	rows := make([][]float64, len(c.data))
	for i, axis := range c.data {
		rows[i] = make([]float64, len(axis))
		copy(rows[i], axis)
	}

	return rows
}

// Point returns the j-th point as a fresh []float64 of length d.
// Returns ErrPointIndex if j is out of range.
func (c Cloud) Point(j int) ([]float64, error) {
	if j < 0 || j >= c.Points() {
		return nil, ErrPointIndex
	}
	p := make([]float64, len(c.data))
	for i := range c.data {
		p[i] = c.data[i][j]
	}

	return p, nil
}
