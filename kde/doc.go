// Package kde provides a Gaussian kernel density estimator over a point
// cloud in R^d, the density model consumed by the filtration scorer.
//
// What:
//
//   - New fits a Gaussian KDE to d×N data (one row per axis): the kernel
//     covariance is the sample covariance of the data scaled by the
//     squared bandwidth factor.
//   - The default bandwidth follows Scott's rule, N^(−1/(d+4));
//     SetBandwidth swaps in a manual factor and refits.
//   - Evaluate returns the density at a point and satisfies
//     filtration.DensityFunc. It is safe for concurrent use: evaluation
//     allocates its own scratch vectors and never mutates the estimator.
//
// How:
//
//	f(x) = (1/N) · Σᵢ exp(−½·(x−xᵢ)ᵀ Σ⁻¹ (x−xᵢ)) / sqrt((2π)^d·det Σ)
//
//	with Σ = factor² · Cov(data). The Cholesky factorization of Σ
//	(gonum/mat) serves both the quadratic form and the determinant.
//
// Complexity:
//
//   - New / SetBandwidth: O(N·d² + d³).
//   - Evaluate: O(N·d²) per call.
//
// Errors:
//
//   - ErrNoData: no points or no axes.
//   - ErrRagged: axes of differing lengths.
//   - ErrDimensionMismatch: evaluation point of wrong dimension.
//   - ErrSingularCovariance: the scaled covariance is not positive
//     definite (too few or degenerate samples).
//   - ErrInvalidBandwidth: non-positive or non-finite bandwidth factor.
package kde
