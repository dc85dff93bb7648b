package geom

import (
	. "math"

	"gonum.org/v1/gonum/mat"
)

// EulerMatrix creates a 3D rotation matrix based off the Euler angles phi,
// theta, and psi. These represent three consecutive rotations around the x,
// y, and z axes, respectively, so the returned matrix is Rz(psi)Ry(theta)Rx(phi).
func EulerMatrix(phi, theta, psi float64) *mat.Dense {
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, Cos(phi), -Sin(phi),
		0, Sin(phi), Cos(phi),
	})
	ry := mat.NewDense(3, 3, []float64{
		Cos(theta), 0, Sin(theta),
		0, 1, 0,
		-Sin(theta), 0, Cos(theta),
	})
	rz := mat.NewDense(3, 3, []float64{
		Cos(psi), -Sin(psi), 0,
		Sin(psi), Cos(psi), 0,
		0, 0, 1,
	})

	yx, zyx := mat.NewDense(3, 3, nil), mat.NewDense(3, 3, nil)
	yx.Mul(ry, rx)
	zyx.Mul(rz, yx)
	return zyx
}

// Rotate returns v rotated by the given 3 x 3 rotation matrix.
func (v Vec) Rotate(m mat.Matrix) Vec {
	out := mat.NewVecDense(3, nil)
	out.MulVec(m, mat.NewVecDense(3, []float64{v[0], v[1], v[2]}))
	return Vec{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// Transform applies the rigid-body transform x -> m*x + shift to every vector
// in vs and returns the results in a new slice.
func Transform(vs []Vec, m mat.Matrix, shift Vec) []Vec {
	out := make([]Vec, len(vs))
	for i := range vs {
		out[i] = vs[i].Rotate(m).Add(shift)
	}
	return out
}

// IsRotation returns true if m is a proper 3 x 3 rotation matrix to within
// tol, i.e. m^T m = I and det(m) = 1.
func IsRotation(m mat.Matrix, tol float64) bool {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return false
	}
	mtm := mat.NewDense(3, 3, nil)
	mtm.Mul(m.T(), m)
	id := mat.NewDiagDense(3, []float64{1, 1, 1})
	return mat.EqualApprox(mtm, id, tol) && Abs(mat.Det(m)-1) < tol
}
