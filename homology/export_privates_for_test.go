package homology

// Test-only exports; keeps white-box tests in homology_test while the
// reduction internals stay private.

// NewReducerForTest exposes newReducer.
func NewReducerForTest(total int) *reducer { return newReducer(total) }

// Push exposes reducer.push.
func (r *reducer) Push(rank, dim int, column []int) (int, bool, error) {
	return r.push(rank, dim, column)
}

// OpenAt exposes reducer.openAt.
func (r *reducer) OpenAt(rank int) bool { return r.openAt(rank) }

// SymDiffForTest exposes symDiff.
func SymDiffForTest(a, b []int) []int { return symDiff(a, b) }
