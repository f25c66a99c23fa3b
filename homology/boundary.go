package homology

import (
	"sort"

	"github.com/katalvlaran/cubix/filtration"
	"github.com/katalvlaran/cubix/grid"
)

// boundaryIndex resolves the codimension-1 boundary of a retained cell
// into filtration ranks. Face cell indexes are memoized per cell on
// first use; only cells surviving pruning are ever queried, so nothing
// is precomputed for the whole grid.
type boundaryIndex struct {
	g     *grid.Grid
	filt  *filtration.Filtration
	faces map[int][]int // cell index → face cell indexes
}

func newBoundaryIndex(filt *filtration.Filtration) *boundaryIndex {
	return &boundaryIndex{
		g:     filt.Grid(),
		filt:  filt,
		faces: make(map[int][]int),
	}
}

// faceIndexes returns the cell indexes of the 2k faces of c, memoized.
func (b *boundaryIndex) faceIndexes(c grid.Cell) []int {
	if cached, ok := b.faces[c.Index]; ok {
		return cached
	}
	cells := b.g.Faces(c)
	idxs := make([]int, len(cells))
	for i, face := range cells {
		idxs[i] = face.Index
	}
	b.faces[c.Index] = idxs

	return idxs
}

// column builds the mod-2 boundary column of the cell at the given rank:
// the ranks of its faces already present in the complex, sorted
// ascending. Faces that were pruned, or whose rank is ≥ rank because
// they have not been inserted yet, contribute zero and are skipped.
func (b *boundaryIndex) column(c grid.Cell, rank int) []int {
	var col []int
	for _, faceIdx := range b.faceIndexes(c) {
		r, ok := b.filt.Rank(faceIdx)
		if !ok || r >= rank {
			continue
		}
		col = append(col, r)
	}
	sort.Ints(col)

	return col
}
