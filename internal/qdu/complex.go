package qdu

import "math/cmplx"

// Complex is a type alias for clarity at call sites.
type Complex = complex128

// Matrix2 is a 2x2 unitary (or, for RelationalLock, non-unitary) operator
// acting on a single QDU's {|0>, |1>} basis.
type Matrix2 [2][2]Complex

// Matrix4 is a 4x4 operator acting jointly on two QDUs, basis-ordered
// |b_a b_b> -> 00, 01, 10, 11 where a is the first index argument and b the
// second wherever a Matrix4 is applied (StateVector.ApplyJoint in state.go).
type Matrix4 [4][4]Complex

// Apply computes m * (c0, c1)^T, the single-QDU matvec used by gate
// expansion, generalizing the inline per-gate matvec a hand-written gate
// function would otherwise repeat for each disjoint basis pair.
func (m Matrix2) Apply(c0, c1 Complex) (Complex, Complex) {
	return m[0][0]*c0 + m[0][1]*c1, m[1][0]*c0 + m[1][1]*c1
}

// Dagger returns the conjugate transpose, used by the catalogue test that
// checks U * U-dagger = I for every pattern.
func (m Matrix2) Dagger() Matrix2 {
	return Matrix2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Mul composes two single-QDU operators: (m * other) applied to a vector
// first applies other, then m — i.e. standard matrix multiplication.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	var out Matrix2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j]
		}
	}
	return out
}

// identity2 is the 2x2 identity, returned for the Identity pattern.
var identity2 = Matrix2{
	{1, 0},
	{0, 1},
}

// controlledMatrix builds |0><0| (x) I + |1><1| (x) U, the
// ControlledInteraction matrix, in |control, target> basis order.
func controlledMatrix(u Matrix2) Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, u[0][0], u[0][1]},
		{0, 0, u[1][0], u[1][1]},
	}
}
