package homology

// reducer is the incremental mod-2 boundary-matrix column reduction,
// uniform across dimensions. All state is indexed by rank in dense
// slices; no map is ever iterated, keeping event order bit-identical
// across runs.
//
// Scoped to a single run and discarded with it.
type reducer struct {
	next    int     // expected next rank (defensive contract check)
	dims    []int   // rank → cell dimension
	columns [][]int // rank → reduced boundary column (sorted asc), nil for positive cells
	owner   []int   // pivot rank → rank of the column owning it, -1 if free
	open    []bool  // rank → class opened here and not yet killed
}

func newReducer(total int) *reducer {
	r := &reducer{
		dims:    make([]int, total),
		columns: make([][]int, total),
		owner:   make([]int, total),
		open:    make([]bool, total),
	}
	for i := range r.owner {
		r.owner[i] = -1
	}

	return r
}

// push inserts the cell at the given rank with its boundary column
// (present-face ranks, sorted ascending) and reduces it against
// previously stored columns until its pivot is free or the column is
// exhausted.
//
// Returns (birth, true) when the cell kills the class opened at rank
// birth (a death event), or (0, false) when the cell opens a new class
// of its own dimension (a birth event). A cell whose reduction ends on
// a free pivot holding no open class emits no event at all: with faces
// absent the restricted boundary sum can terminate on the rank of a
// cell that itself died, and no class lives there to kill.
//
// Returns ErrRankOutOfOrder if rank is not exactly the next expected
// rank; the engine never recovers from that.
func (r *reducer) push(rank, dim int, column []int) (int, bool, error) {
	if rank != r.next {
		return 0, false, ErrRankOutOfOrder
	}
	r.next++
	r.dims[rank] = dim

	for len(column) > 0 {
		pivot := column[len(column)-1]
		o := r.owner[pivot]
		if o < 0 {
			// Pivot is free: store the column either way so later cells
			// keep reducing against it.
			r.columns[rank] = column
			r.owner[pivot] = rank
			if !r.open[pivot] {
				// The pivot rank belongs to a cell that itself died, so
				// there is no class to kill; the nonzero boundary also
				// opens nothing. Only absent faces can produce this.
				return 0, false, nil
			}
			// The pivot is the youngest unmatched birth in the boundary
			// sum, so the elder rule holds by construction.
			r.open[pivot] = false

			return pivot, true, nil
		}
		column = symDiff(column, r.columns[o])
	}

	// Boundary reduced to zero: the cell opens a new dim-class.
	r.open[rank] = true

	return 0, false, nil
}

// dimension returns the cell dimension recorded at rank.
func (r *reducer) dimension(rank int) int { return r.dims[rank] }

// openAt reports whether the class opened at rank is still unmatched.
func (r *reducer) openAt(rank int) bool { return r.open[rank] }

// symDiff returns the mod-2 sum (symmetric difference) of two sorted
// ascending rank slices, itself sorted ascending.
//
// Complexity: O(len(a)+len(b)).
func symDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
