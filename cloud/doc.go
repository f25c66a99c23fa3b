// Package cloud provides the point-cloud value type consumed by the
// homology pipeline, deterministic samplers for reference shapes, and
// CSV ingest/export.
//
// What:
//
//   - Cloud holds N points of R^d as d axis rows; it is immutable once
//     built and satisfies homology.Source (Dimension + Extent).
//   - One value type, many pure constructors: rather than a subtype per
//     shape, every sampler is a plain function returning a Cloud —
//     S0, S1, S2, T2 (torus), RP2 (projective plane via the Hilbert
//     map on S²), Wedge (two tangent circles).
//   - Samplers are seeded and deterministic: the same seed always yields
//     the same cloud, and seed 0 selects a fixed default seed.
//   - FromCSV / WriteCSV use the semicolon-separated format with one
//     line per axis.
//
// Errors:
//
//   - ErrNoData: empty data, or a sampler asked for fewer than 1 point.
//   - ErrRagged: axis rows of differing lengths.
//   - ErrPointIndex: point index out of range.
//   - ErrBadShape: non-positive shape radius.
//   - ErrCSV: malformed CSV input (wraps the parse error).
package cloud
