/*package geom contains the geometric building blocks used by the surface area
engine: vectors, a uniform cell grid for neighbor searches, and rigid-body
transforms.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector in Angstroms.
type Vec [3]float64

// Sub returns v - u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Add returns v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Scale returns k*v.
func (v Vec) Scale(k float64) Vec {
	return Vec{k * v[0], k * v[1], k * v[2]}
}

// Dot computes the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Norm returns the length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist2 returns the squared distance between v and u.
func (v Vec) Dist2(u Vec) float64 {
	dx, dy, dz := v[0]-u[0], v[1]-u[1], v[2]-u[2]
	return dx*dx + dy*dy + dz*dz
}

// Finite returns true if none of the components of v are NaN or infinite.
func (v Vec) Finite() bool {
	for k := 0; k < 3; k++ {
		if math.IsNaN(v[k]) || math.IsInf(v[k], 0) {
			return false
		}
	}
	return true
}

// Bounds returns the lowermost and uppermost corners of the bounding box
// containing every point in vs. vs must be non-empty.
func Bounds(vs []Vec) (min, max Vec) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		for k := 0; k < 3; k++ {
			min[k], max[k] = fMinMax(min[k], max[k], v[k])
		}
	}
	return min, max
}

func fMinMax(min, max, x float64) (float64, float64) {
	if x < min {
		return x, max
	}
	if x > max {
		return min, x
	}
	return min, max
}
