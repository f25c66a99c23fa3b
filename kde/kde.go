package kde

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for kernel density estimation.
var (
	// ErrNoData indicates an empty data set.
	ErrNoData = errors.New("kde: data must contain at least one axis and one point")
	// ErrRagged indicates axes of differing lengths.
	ErrRagged = errors.New("kde: all axes must have the same number of points")
	// ErrDimensionMismatch indicates an evaluation point of wrong dimension.
	ErrDimensionMismatch = errors.New("kde: point dimension does not match data")
	// ErrSingularCovariance indicates the scaled covariance is not
	// positive definite.
	ErrSingularCovariance = errors.New("kde: covariance matrix is singular")
	// ErrInvalidBandwidth indicates a non-positive or non-finite factor.
	ErrInvalidBandwidth = errors.New("kde: bandwidth factor must be positive and finite")
)

// KDE is a Gaussian kernel density estimate fit to a point cloud.
// Immutable after New / SetBandwidth; Evaluate is safe for concurrent use.
type KDE struct {
	data   [][]float64 // d rows × N columns, deep copy of the input
	dim    int
	n      int
	factor float64
	cov    *mat.SymDense // unscaled sample covariance, kept for refits
	chol   mat.Cholesky  // factorization of factor²·cov
	norm   float64       // 1 / (N · sqrt((2π)^d · det Σ))
}

// New fits a Gaussian KDE to data laid out as d rows (axes) of N values
// each, using Scott's-rule bandwidth N^(−1/(d+4)).
//
// Returns ErrNoData, ErrRagged or ErrSingularCovariance.
func New(data [][]float64) (*KDE, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrNoData
	}
	d, n := len(data), len(data[0])
	rows := make([][]float64, d)
	for i, axis := range data {
		if len(axis) != n {
			return nil, ErrRagged
		}
		rows[i] = make([]float64, n)
		copy(rows[i], axis)
	}

	// Sample covariance over N observations in R^d.
	obs := mat.NewDense(n, d, nil)
	for j := 0; j < n; j++ {
		for i := 0; i < d; i++ {
			obs.Set(j, i, rows[i][j])
		}
	}
	cov := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(cov, obs, nil)

	k := &KDE{
		data: rows,
		dim:  d,
		n:    n,
		cov:  cov,
	}
	if err := k.refit(scottFactor(d, n)); err != nil {
		return nil, err
	}

	return k, nil
}

// scottFactor is Scott's rule of thumb: N^(−1/(d+4)).
func scottFactor(d, n int) float64 {
	return math.Pow(float64(n), -1/(float64(d)+4))
}

// refit factorizes factor²·cov and recomputes the normalization constant.
func (k *KDE) refit(factor float64) error {
	scaled := mat.NewSymDense(k.dim, nil)
	for i := 0; i < k.dim; i++ {
		for j := i; j < k.dim; j++ {
			scaled.SetSym(i, j, factor*factor*k.cov.At(i, j))
		}
	}
	if ok := k.chol.Factorize(scaled); !ok {
		return ErrSingularCovariance
	}
	logDet := k.chol.LogDet()
	k.norm = 1 / (float64(k.n) * math.Exp(0.5*(float64(k.dim)*math.Log(2*math.Pi)+logDet)))
	k.factor = factor

	return nil
}

// Factor returns the current bandwidth factor.
func (k *KDE) Factor() float64 { return k.factor }

// Bandwidth returns the kernel covariance, factor²·Cov(data).
func (k *KDE) Bandwidth() *mat.SymDense {
	scaled := mat.NewSymDense(k.dim, nil)
	for i := 0; i < k.dim; i++ {
		for j := i; j < k.dim; j++ {
			scaled.SetSym(i, j, k.factor*k.factor*k.cov.At(i, j))
		}
	}

	return scaled
}

// SetBandwidth replaces the bandwidth factor and refits.
// Returns ErrInvalidBandwidth or ErrSingularCovariance.
func (k *KDE) SetBandwidth(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrInvalidBandwidth
	}

	return k.refit(factor)
}

// Evaluate returns the estimated density at point. It satisfies
// filtration.DensityFunc and is safe for concurrent use.
//
// Returns ErrDimensionMismatch if len(point) != d.
//
// Complexity: O(N·d²) time, O(d) memory per call.
func (k *KDE) Evaluate(point []float64) (float64, error) {
	if len(point) != k.dim {
		return 0, ErrDimensionMismatch
	}

	diff := mat.NewVecDense(k.dim, nil)
	solved := mat.NewVecDense(k.dim, nil)
	var sum float64
	for j := 0; j < k.n; j++ {
		for i := 0; i < k.dim; i++ {
			diff.SetVec(i, point[i]-k.data[i][j])
		}
		if err := k.chol.SolveVecTo(solved, diff); err != nil {
			return 0, ErrSingularCovariance
		}
		sum += math.Exp(-0.5 * mat.Dot(diff, solved))
	}

	return k.norm * sum, nil
}
