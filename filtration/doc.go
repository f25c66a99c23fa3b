// Package filtration scores every cell of a cubical grid with an
// externally fitted density function and orders the cells into a
// rank-indexed filtration.
//
// What:
//
//   - Score evaluates the density function at each cell's centroid,
//     fanning out over worker goroutines (golang.org/x/sync/errgroup);
//     each worker writes into a disjoint region of a preallocated slice,
//     so no synchronization is needed beyond the group itself.
//   - Build sorts all cells by descending density, breaks ties by
//     (cell dimension ascending, cell index ascending), prunes the
//     low-density tail, and assigns each surviving cell an integer rank
//     equal to its position in the order.
//
// Ordering contract:
//
//	The tie-break is a fixed total order over cell identity, so a given
//	(grid, density) input always produces bit-identical ranks regardless
//	of worker count or scheduling. Dimension-ascending ties put faces
//	before cofaces when densities are exactly equal, which keeps the
//	retained prefix a valid filtration on symmetric inputs.
//
// Pruning:
//
//	keep = ceil((1−p)·total) cells survive, p ∈ [0, 1). Pruned cells
//	never enter the complex; downstream boundary lookups treat them as
//	absent.
//
// Complexity:
//
//   - Score: O(total·cost(f)/workers) time, O(total) memory.
//   - Build: O(total·log(total)) time, O(total) memory.
//
// Errors:
//
//   - ErrNilGrid, ErrNilDensity: missing collaborators.
//   - ErrInvalidPruning: pruning fraction outside [0, 1).
//   - ErrDensityEval: the external density function failed (fatal; no
//     partial result is returned).
//   - ErrBadDensity: the density function returned NaN, Inf or a
//     negative value.
//   - ErrRankRange: rank outside [0, Len).
package filtration
