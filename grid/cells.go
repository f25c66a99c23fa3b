package grid

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Cell decodes the cell with the given dense index.
// Returns ErrCellIndex if index is outside [0, CellCount).
//
// Complexity: O(d).
func (g *Grid) Cell(index int) (Cell, error) {
	if index < 0 || index >= g.total {
		return Cell{}, ErrCellIndex
	}
	coords := make([]int, g.dim)
	rem := index
	for i := 0; i < g.dim; i++ {
		coords[i] = rem / g.place[i]
		rem %= g.place[i]
	}

	return Cell{Index: index, Coords: coords}, nil
}

// Index encodes a coordinate tuple into its dense cell index.
// Returns ErrCellCoords if the tuple has the wrong length or a
// coordinate outside the lattice.
//
// Complexity: O(d).
func (g *Grid) Index(coords []int) (int, error) {
	if len(coords) != g.dim {
		return 0, ErrCellCoords
	}
	idx := 0
	for i, x := range coords {
		if x < 0 || x >= g.radix[i] {
			return 0, ErrCellCoords
		}
		idx += x * g.place[i]
	}

	return idx, nil
}

// Centroid returns the canonical representative point of a cell in R^d:
// the lattice point itself for even coordinates, the interval midpoint
// for odd ones.
//
// Complexity: O(d) time and memory.
func (g *Grid) Centroid(c Cell) []float64 {
	p := make([]float64, g.dim)
	for i, x := range c.Coords {
		p[i] = g.box[i].Min + float64(x)*g.step[i]/2
	}

	return p
}

// Faces returns the 2k codimension-1 boundary faces of a k-cell: for each
// interval axis, the two cells obtained by collapsing that coordinate to
// its low or high endpoint, all other axes held fixed. A 0-cell has no
// faces. Faces are emitted in a fixed order (axis ascending, low endpoint
// before high), so the result is deterministic.
//
// Working mod 2, every face carries a unit incidence coefficient.
//
// Complexity: O(k·d) time, O(k·d) memory.
func (g *Grid) Faces(c Cell) []Cell {
	var faces []Cell
	for i, x := range c.Coords {
		if x&1 == 0 {
			continue
		}
		for _, endpoint := range [2]int{x - 1, x + 1} {
			coords := make([]int, g.dim)
			copy(coords, c.Coords)
			coords[i] = endpoint
			faces = append(faces, Cell{
				Index:  c.Index + (endpoint-x)*g.place[i],
				Coords: coords,
			})
		}
	}

	return faces
}

// DimCellCount returns the number of k-dimensional cells on the grid:
// C(d', k) · n^k · (n+1)^(d'−k), where d' is the number of
// non-degenerate axes. Returns 0 for k outside [0, d'].
//
// Complexity: O(d).
func (g *Grid) DimCellCount(k int) int {
	var eff int
	for i := 0; i < g.dim; i++ {
		if !g.Degenerate(i) {
			eff++
		}
	}
	if k < 0 || k > eff {
		return 0
	}
	count := combin.Binomial(eff, k)
	for i := 0; i < k; i++ {
		count *= g.res
	}
	for i := 0; i < eff-k; i++ {
		count *= g.res + 1
	}

	return count
}
