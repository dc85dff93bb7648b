package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vecEpsEq(v1, v2 Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		diff := v1[i] - v2[i]
		if diff > eps || diff < -eps {
			return false
		}
	}
	return true
}

func TestRotate(t *testing.T) {
	eps := 1e-12
	table := []struct {
		phi, theta, psi float64
		start, end      Vec
	}{
		{0, 0, 0, Vec{1, 2, 3}, Vec{1, 2, 3}},
		{math.Pi / 2, 0, 0, Vec{0, 1, 0}, Vec{0, 0, 1}},
		{math.Pi / 2, 0, 0, Vec{1, 0, 0}, Vec{1, 0, 0}},
		{0, math.Pi / 2, 0, Vec{1, 0, 0}, Vec{0, 0, -1}},
		{0, 0, math.Pi / 2, Vec{1, 0, 0}, Vec{0, 1, 0}},
		{math.Pi / 2, 0, math.Pi / 2, Vec{0, 1, 0}, Vec{0, 0, 1}},
		{math.Pi, 0, 0, Vec{0, 1, 1}, Vec{0, -1, -1}},
	}

	for i, test := range table {
		m := EulerMatrix(test.phi, test.theta, test.psi)
		v := test.start.Rotate(m)
		if !vecEpsEq(v, test.end, eps) {
			t.Errorf(
				"%d) %v.Rotate(%.4g %.4g %.4g) -> %v instead of %v",
				i+1, test.start, test.phi, test.theta, test.psi, v, test.end,
			)
		}
	}
}

func TestEulerMatrixIsRotation(t *testing.T) {
	for _, angles := range [][3]float64{
		{0, 0, 0}, {0.3, -1.2, 2.5}, {math.Pi, math.Pi / 3, -0.1},
	} {
		m := EulerMatrix(angles[0], angles[1], angles[2])
		assert.True(t, IsRotation(m, 1e-12), "angles %v", angles)
	}
}

func TestTransformPreservesDistances(t *testing.T) {
	vs := []Vec{{0, 0, 0}, {1.5, -2, 0.25}, {3, 4, 5}}
	out := Transform(vs, EulerMatrix(0.7, -0.4, 1.9), Vec{10, -20, 30})

	assert.Len(t, out, len(vs))
	for i := range vs {
		for j := range vs {
			assert.InDelta(t, vs[i].Dist2(vs[j]), out[i].Dist2(out[j]), 1e-9)
		}
	}
	// The input is not modified.
	assert.Equal(t, Vec{1.5, -2, 0.25}, vs[1])
}
