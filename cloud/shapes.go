package cloud

import (
	"math"
)

// Shape samplers. Each constructor is a pure function of its arguments:
// the same seed always produces the same cloud (seed 0 selects the fixed
// default seed). The noise parameter deviates every coordinate with a
// normal variable of standard deviation noise.

// S0 samples n points on the 0-sphere {−r, +r} ⊂ R¹.
// Returns ErrBadShape for r ≤ 0, ErrNoData for n < 1.
func S0(r, noise float64, n int, seed int64) (Cloud, error) {
	if r <= 0 {
		return Cloud{}, ErrBadShape
	}
	if n < 1 {
		return Cloud{}, ErrNoData
	}
	rng := rngFromSeed(seed)
	x := make([]float64, n)
	for i := range x {
		x[i] = r*float64(2*rng.Intn(2)-1) + rng.NormFloat64()*noise
	}

	return New([][]float64{x})
}

// S1 samples n points on the circle of radius r centered at
// (center[0], center[1]) ⊂ R².
func S1(center [2]float64, r, noise float64, n int, seed int64) (Cloud, error) {
	if r <= 0 {
		return Cloud{}, ErrBadShape
	}
	if n < 1 {
		return Cloud{}, ErrNoData
	}
	rng := rngFromSeed(seed)
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		t := rng.Float64() * 2 * math.Pi
		x[i] = center[0] + r*math.Cos(t) + rng.NormFloat64()*noise
		y[i] = center[1] + r*math.Sin(t) + rng.NormFloat64()*noise
	}

	return New([][]float64{x, y})
}

// S2 samples n points uniformly on the sphere of radius r centered at
// center ⊂ R³, via the inverse-CDF parametrization.
func S2(center [3]float64, r, noise float64, n int, seed int64) (Cloud, error) {
	if r <= 0 {
		return Cloud{}, ErrBadShape
	}
	if n < 1 {
		return Cloud{}, ErrNoData
	}
	rng := rngFromSeed(seed)
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := math.Acos(2*rng.Float64() - 1)
		phi := 2 * math.Pi * rng.Float64()
		x[i] = center[0] + r*math.Sin(theta)*math.Cos(phi) + rng.NormFloat64()*noise
		y[i] = center[1] + r*math.Sin(theta)*math.Sin(phi) + rng.NormFloat64()*noise
		z[i] = center[2] + r*math.Cos(theta) + rng.NormFloat64()*noise
	}

	return New([][]float64{x, y, z})
}

// T2 samples n points on the torus with tube radius a and center-circle
// radius b ⊂ R³, rejection-sampled so the density is uniform over the
// surface rather than clustered on the inner rim.
// Returns ErrBadShape unless 0 < a ≤ b.
func T2(a, b, noise float64, n int, seed int64) (Cloud, error) {
	if a <= 0 || b < a {
		return Cloud{}, ErrBadShape
	}
	if n < 1 {
		return Cloud{}, ErrNoData
	}
	rng := rngFromSeed(seed)
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	z := make([]float64, 0, n)
	for len(x) < n {
		theta := 2 * math.Pi * rng.Float64()
		phi := 2 * math.Pi * rng.Float64()
		// Accept proportionally to the local surface area b + a·cos θ.
		if rng.Float64() > (b+a*math.Cos(theta))/(a+b) {
			continue
		}
		x = append(x, math.Sin(phi)*(b+a*math.Cos(theta))+rng.NormFloat64()*noise)
		y = append(y, a*math.Sin(theta)+rng.NormFloat64()*noise)
		z = append(z, math.Cos(phi)*(b+a*math.Cos(theta))+rng.NormFloat64()*noise)
	}

	return New([][]float64{x, y, z})
}

// RP2 samples n points on the real projective plane embedded in R⁴ via
// the Hilbert map (ab, bc, ac, a²−b²) applied to uniform samples of S².
// The image distribution is not uniform.
func RP2(noise float64, n int, seed int64) (Cloud, error) {
	if n < 1 {
		return Cloud{}, ErrNoData
	}
	rng := rngFromSeed(seed)
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := math.Acos(2*rng.Float64() - 1)
		phi := 2 * math.Pi * rng.Float64()
		a := math.Sin(theta) * math.Cos(phi)
		b := math.Sin(theta) * math.Sin(phi)
		c := math.Cos(theta)
		x[i] = a*b + rng.NormFloat64()*noise
		y[i] = b*c + rng.NormFloat64()*noise
		z[i] = a*c + rng.NormFloat64()*noise
		w[i] = a*a - b*b + rng.NormFloat64()*noise
	}

	return New([][]float64{x, y, z, w})
}

// Wedge samples n points on two circles of radius r centered at (0, r)
// and (0, −r), tangent at the origin (the wedge S¹ ∨ S¹). The first
// n/2 points land on the upper circle, the rest on the lower one.
func Wedge(r, noise float64, n int, seed int64) (Cloud, error) {
	if r <= 0 {
		return Cloud{}, ErrBadShape
	}
	if n < 2 {
		return Cloud{}, ErrNoData
	}
	rng := rngFromSeed(seed)
	x := make([]float64, n)
	y := make([]float64, n)
	half := n / 2
	for i := 0; i < n; i++ {
		cy := r
		if i >= half {
			cy = -r
		}
		t := rng.Float64() * 2 * math.Pi
		x[i] = r*math.Cos(t) + rng.NormFloat64()*noise
		y[i] = cy + r*math.Sin(t) + rng.NormFloat64()*noise
	}

	return New([][]float64{x, y})
}
