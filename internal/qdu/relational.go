package qdu

import "math"

// RelationalLock applies the non-unitary two-QDU projection: the
// controlled-phase interpretation diag(1,1,1,e^{i*theta}) over the (q1,
// q2) sub-register, symmetric in q1 and q2. `establish` is accepted but
// does not alter behavior for this interpretation — controlled-phase is
// the default and only implemented mode; an alternative Bell-projection
// mode is not implemented (see DESIGN.md). `establish` does not flip the
// sign of theta here: it is reserved/inert for the controlled-phase mode,
// not a conjugate-phase toggle.
func (s *StateVector) RelationalLock(q1, q2 Id, theta float64, establish bool) error {
	_ = establish
	idx1 := s.Admit(q1)
	idx2 := s.Admit(q2)
	if idx1 == idx2 {
		return newErr(KindInvalidOperation, "RelationalLock requires two distinct QDUs, got %s twice", q1)
	}
	phase := complex(math.Cos(theta), math.Sin(theta))
	m := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, phase},
	}
	s.ApplyJoint(idx1, idx2, m)
	return s.Normalize()
}
