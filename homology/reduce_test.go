package homology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubix/homology"
)

// TestSymDiff verifies the mod-2 column sum on sorted rank slices.
func TestSymDiff(t *testing.T) {
	cases := []struct {
		name    string
		a, b    []int
		want    []int
		wantLen int
	}{
		{"Disjoint", []int{0, 2}, []int{1, 3}, []int{0, 1, 2, 3}, 4},
		{"Cancel", []int{0, 1}, []int{0, 1}, []int{}, 0},
		{"Partial", []int{0, 1, 4}, []int{1, 2}, []int{0, 2, 4}, 3},
		{"EmptyLeft", nil, []int{5}, []int{5}, 1},
		{"EmptyBoth", nil, nil, []int{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := homology.SymDiffForTest(tc.a, tc.b)
			require.Len(t, got, tc.wantLen)
			for i, v := range tc.want {
				if i < len(got) {
					require.Equal(t, v, got[i])
				}
			}
		})
	}
}

// TestReducer_RankContract verifies the defensive increasing-rank check.
func TestReducer_RankContract(t *testing.T) {
	r := homology.NewReducerForTest(3)

	_, _, err := r.Push(1, 0, nil)
	require.ErrorIs(t, err, homology.ErrRankOutOfOrder)

	_, _, err = r.Push(0, 0, nil)
	require.NoError(t, err)

	_, _, err = r.Push(0, 0, nil) // replay
	require.ErrorIs(t, err, homology.ErrRankOutOfOrder)

	_, _, err = r.Push(2, 0, nil) // skip
	require.ErrorIs(t, err, homology.ErrRankOutOfOrder)
}

// TestReducer_MergeAndCycle walks the smallest interesting complex by
// hand: two vertices, then two parallel edges between them.
//
//	rank 0: vertex a      → birth (component)
//	rank 1: vertex b      → birth (component)
//	rank 2: edge a–b      → kills the younger component (birth 1)
//	rank 3: edge a–b bis  → boundary cancels: births a 1-cycle
func TestReducer_MergeAndCycle(t *testing.T) {
	r := homology.NewReducerForTest(4)

	_, died, err := r.Push(0, 0, nil)
	require.NoError(t, err)
	require.False(t, died)

	_, died, err = r.Push(1, 0, nil)
	require.NoError(t, err)
	require.False(t, died)

	birth, died, err := r.Push(2, 1, []int{0, 1})
	require.NoError(t, err)
	require.True(t, died)
	require.Equal(t, 1, birth, "elder rule: the younger birth dies")

	_, died, err = r.Push(3, 1, []int{0, 1})
	require.NoError(t, err)
	require.False(t, died, "second edge closes a 1-cycle")
}

// TestReducer_AbsentFacesAreValid verifies a cell whose faces were pruned
// simply opens a class instead of failing.
func TestReducer_AbsentFacesAreValid(t *testing.T) {
	r := homology.NewReducerForTest(1)

	// An edge arriving with no present faces at all (both pruned).
	_, died, err := r.Push(0, 1, nil)
	require.NoError(t, err)
	require.False(t, died)
}

// TestReducer_DeadPivotEmitsNoEvent covers boundary columns that survive
// reduction with a pivot on the rank of a cell that itself died. With
// absent faces the restricted boundary sum is not a true boundary
// operator, so this configuration is reachable; no class lives at the
// pivot, so the insertion must emit neither a death nor a birth.
//
//	rank 0: vertex a           → birth
//	rank 1: vertex b           → birth
//	rank 2: edge a–b           → kills birth 1
//	rank 3: square, only face present is the edge at rank 2 → no event
//	rank 4: square, same lone face → cancels against rank 3's stored
//	        column and opens a 2-class
func TestReducer_DeadPivotEmitsNoEvent(t *testing.T) {
	r := homology.NewReducerForTest(5)

	_, died, err := r.Push(0, 0, nil)
	require.NoError(t, err)
	require.False(t, died)
	_, died, err = r.Push(1, 0, nil)
	require.NoError(t, err)
	require.False(t, died)

	birth, died, err := r.Push(2, 1, []int{0, 1})
	require.NoError(t, err)
	require.True(t, died)
	require.Equal(t, 1, birth)

	_, died, err = r.Push(3, 2, []int{2})
	require.NoError(t, err)
	require.False(t, died, "no open class lives at rank 2")
	require.False(t, r.OpenAt(3), "a nonzero boundary opens nothing")

	// The stored column still participates in later reductions.
	_, died, err = r.Push(4, 2, []int{2})
	require.NoError(t, err)
	require.False(t, died)
	require.True(t, r.OpenAt(4))
}
