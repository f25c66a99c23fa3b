// Package homology computes persistent homology of a density-ordered
// cubical filtration and exposes the library's main entry point, Compute.
//
// What:
//
//   - Compute wires the full pipeline: bounding box → grid → density
//     scoring → filtration → incremental persistence, returning a
//     Diagram of (dimension, birth rank, death rank) pairs with the
//     density values at those ranks attached.
//   - The engine inserts cells strictly in increasing rank order
//     (decreasing density: the most significant structure enters first)
//     and maintains an incremental mod-2 boundary-matrix column
//     reduction, uniform across dimensions — connected components are
//     not special-cased.
//   - A cell whose reduced boundary is zero opens a new class of its own
//     dimension (birth at its rank). A cell whose reduced boundary keeps
//     a pivot kills the class opened at the pivot's rank: the youngest
//     unmatched class dies, the elder survives.
//   - Classes still open when the filtration is exhausted are emitted
//     with Death = Unbounded.
//
// Boundary lookups:
//
//	A face that was pruned, or that has not yet been inserted because
//	its density is lower than the current cell's, is treated as absent
//	(zero in the boundary sum). This is a valid configuration, not a
//	fault. With faces absent the restricted boundary is no longer a true
//	boundary operator, and a reduction can end on a pivot whose rank
//	holds no open class (that cell died itself); such an insertion emits
//	no pair at all. On a pruned run the pairs therefore cover the ranks
//	at most once each, not necessarily exhaustively.
//
// Determinism:
//
//	Given identical inputs, the emitted pair sequence is bit-identical
//	across runs: all engine state is indexed by rank in dense slices,
//	and no map iteration order is ever observed.
//
// Cancellation:
//
//	Compute checks ctx between cell insertions (never mid-reduction) and
//	returns ctx.Err() with no partial Diagram. The optional Progress
//	callback fires after each insertion.
//
// Complexity:
//
//	Worst case O(m³) for m retained cells, as for any boundary-matrix
//	reduction; near-linear on the sparse columns cubical grids produce.
//
// Errors:
//
//   - ErrNilSource, ErrNilDensity: missing collaborators.
//   - ErrExtentMismatch: Source.Extent length disagrees with Dimension.
//   - ErrRankOutOfOrder: internal contract violation (a bug upstream,
//     not a recoverable condition).
package homology
