package cloud_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubix/cloud"
)

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestShapes_Deterministic verifies the seed contract on every sampler:
// equal seeds reproduce the cloud bit for bit, seed 0 aliases the fixed
// default, distinct seeds diverge.
func TestShapes_Deterministic(t *testing.T) {
	samplers := []struct {
		name string
		make func(seed int64) (cloud.Cloud, error)
	}{
		{"S0", func(s int64) (cloud.Cloud, error) { return cloud.S0(1, 0.1, 40, s) }},
		{"S1", func(s int64) (cloud.Cloud, error) { return cloud.S1([2]float64{0, 0}, 1, 0.1, 40, s) }},
		{"S2", func(s int64) (cloud.Cloud, error) { return cloud.S2([3]float64{0, 0, 0}, 1, 0.1, 40, s) }},
		{"T2", func(s int64) (cloud.Cloud, error) { return cloud.T2(1, 2, 0.1, 40, s) }},
		{"RP2", func(s int64) (cloud.Cloud, error) { return cloud.RP2(0.1, 40, s) }},
		{"Wedge", func(s int64) (cloud.Cloud, error) { return cloud.Wedge(1, 0.1, 40, s) }},
	}
	for _, s := range samplers {
		t.Run(s.name, func(t *testing.T) {
			a, err := s.make(7)
			require.NoError(t, err)
			b, err := s.make(7)
			require.NoError(t, err)
			require.True(t, reflect.DeepEqual(a.Data(), b.Data()), "same seed must reproduce")

			zero, err := s.make(0)
			require.NoError(t, err)
			def, err := s.make(42)
			require.NoError(t, err)
			require.True(t, reflect.DeepEqual(zero.Data(), def.Data()), "seed 0 must alias the default")

			other, err := s.make(8)
			require.NoError(t, err)
			require.False(t, reflect.DeepEqual(a.Data(), other.Data()), "distinct seeds must diverge")
		})
	}
}

//----------------------------------------------------------------------------//
// Geometry (noise = 0)
//----------------------------------------------------------------------------//

func TestS0_Geometry(t *testing.T) {
	c, err := cloud.S0(2, 0, 50, 3)
	require.NoError(t, err)
	require.Equal(t, 1, c.Dimension())
	require.Equal(t, 50, c.Points())

	for _, v := range c.Data()[0] {
		require.InDelta(t, 2, math.Abs(v), 1e-12)
	}
}

func TestS1_Geometry(t *testing.T) {
	c, err := cloud.S1([2]float64{3, -1}, 2, 0, 60, 5)
	require.NoError(t, err)
	require.Equal(t, 2, c.Dimension())

	data := c.Data()
	for j := 0; j < c.Points(); j++ {
		r := math.Hypot(data[0][j]-3, data[1][j]+1)
		require.InDelta(t, 2, r, 1e-12, "point %d off the circle", j)
	}
}

func TestS2_Geometry(t *testing.T) {
	c, err := cloud.S2([3]float64{1, 0, 0}, 1.5, 0, 60, 5)
	require.NoError(t, err)
	require.Equal(t, 3, c.Dimension())

	data := c.Data()
	for j := 0; j < c.Points(); j++ {
		r := math.Sqrt((data[0][j]-1)*(data[0][j]-1) +
			data[1][j]*data[1][j] + data[2][j]*data[2][j])
		require.InDelta(t, 1.5, r, 1e-12, "point %d off the sphere", j)
	}
}

// TestT2_Geometry checks the implicit torus equation
// (√(x²+z²) − b)² + y² = a².
func TestT2_Geometry(t *testing.T) {
	const a, b = 1.0, 2.5
	c, err := cloud.T2(a, b, 0, 60, 9)
	require.NoError(t, err)
	require.Equal(t, 3, c.Dimension())
	require.Equal(t, 60, c.Points())

	data := c.Data()
	for j := 0; j < c.Points(); j++ {
		ring := math.Hypot(data[0][j], data[2][j]) - b
		require.InDelta(t, a*a, ring*ring+data[1][j]*data[1][j], 1e-12,
			"point %d off the torus", j)
	}
}

// TestRP2_Geometry checks the Hilbert-map coordinate bounds on noiseless
// samples: the products of unit-sphere coordinates stay within [−½, ½]
// and the last coordinate within [−1, 1].
func TestRP2_Geometry(t *testing.T) {
	c, err := cloud.RP2(0, 60, 9)
	require.NoError(t, err)
	require.Equal(t, 4, c.Dimension())

	data := c.Data()
	for j := 0; j < c.Points(); j++ {
		for axis := 0; axis < 3; axis++ {
			require.LessOrEqual(t, math.Abs(data[axis][j]), 0.5+1e-12)
		}
		require.LessOrEqual(t, math.Abs(data[3][j]), 1+1e-12)
	}
}

// TestWedge_Geometry checks every point lies on one of the two tangent
// circles, with the halves split between them.
func TestWedge_Geometry(t *testing.T) {
	const r = 1.5
	c, err := cloud.Wedge(r, 0, 80, 11)
	require.NoError(t, err)

	data := c.Data()
	n := c.Points()
	for j := 0; j < n; j++ {
		upper := math.Hypot(data[0][j], data[1][j]-r)
		lower := math.Hypot(data[0][j], data[1][j]+r)
		center := upper
		if j >= n/2 {
			center = lower
		}
		require.InDelta(t, r, center, 1e-12, "point %d off its circle", j)
	}
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestShapes_Validation(t *testing.T) {
	_, err := cloud.S0(0, 0, 10, 1)
	require.ErrorIs(t, err, cloud.ErrBadShape)
	_, err = cloud.S1([2]float64{0, 0}, -1, 0, 10, 1)
	require.ErrorIs(t, err, cloud.ErrBadShape)
	_, err = cloud.S2([3]float64{0, 0, 0}, 0, 0, 10, 1)
	require.ErrorIs(t, err, cloud.ErrBadShape)
	_, err = cloud.T2(0, 1, 0, 10, 1)
	require.ErrorIs(t, err, cloud.ErrBadShape)
	_, err = cloud.T2(2, 1, 0, 10, 1) // tube wider than the ring
	require.ErrorIs(t, err, cloud.ErrBadShape)
	_, err = cloud.Wedge(0, 0, 10, 1)
	require.ErrorIs(t, err, cloud.ErrBadShape)

	_, err = cloud.S1([2]float64{0, 0}, 1, 0, 0, 1)
	require.ErrorIs(t, err, cloud.ErrNoData)
	_, err = cloud.RP2(0, 0, 1)
	require.ErrorIs(t, err, cloud.ErrNoData)
	_, err = cloud.Wedge(1, 0, 1, 1) // a single point cannot cover two circles
	require.ErrorIs(t, err, cloud.ErrNoData)
}
