// Package cubix computes persistent homology of finite point clouds via
// cubical complexes.
//
// 🚀 What is cubix?
//
//	A pure-Go library that covers a point cloud in R^n with a regular
//	cubical grid, scores every cell with a kernel-density estimate, and
//	tracks how connected components, loops and voids are born and die as
//	the density threshold sweeps from the most to the least significant
//	cell:
//		• Grid: axis-aligned bounding box + lattice of cubical cells
//		• Filtration: density scoring, deterministic ordering, pruning
//		• Homology: incremental mod-2 boundary reduction, birth/death pairs
//		• Cloud: deterministic shape samplers (S⁰, S¹, S², T², RP², S¹∨S¹)
//		• KDE: Gaussian kernel density estimation with Scott's rule
//
// ✨ Why choose cubix?
//
//   - Deterministic – same inputs ⇒ bit-identical diagrams, seeded samplers
//   - Cancellable – context-aware at every cell insertion
//   - Parallel where it matters – density scoring fans out over workers
//   - Minimal API – one entry point, plain options structs, sentinel errors
//
// Everything is organized under five subpackages:
//
//	grid/       — bounding box, lattice, cubical cells and their faces
//	filtration/ — density scorer and rank-ordered filtration builder
//	homology/   — persistence engine, diagrams, the Compute entry point
//	cloud/      — point-cloud value type, shape samplers, CSV ingest/export
//	kde/        — Gaussian kernel density estimator over a cloud
//
// Quick ASCII example, a 1-D grid with n=2:
//
//	    •───•───•        3 vertices, 2 edges
//	    0   2   4        even coordinates: lattice points
//	      1   3          odd coordinates: intervals
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
package cubix
