package qdu

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/cmplxs"
)

// NormTolerance is the epsilon bounding normalization drift: |sum|c_k|^2 -
// 1| must stay below this after every mutation.
const NormTolerance = 1e-9

// minNormSquared is the instability floor: a norm this small (or smaller)
// cannot be rescaled back to 1 without amplifying noise into signal, so the
// operation is rejected instead.
const minNormSquared = 1e-30

// CoherenceThreshold is the C1 acceptance cutoff (1/phi).
const CoherenceThreshold = 0.618

// StateVector owns the 2^N-amplitude potentiality state for the QDUs
// admitted into reg. Basis index k's bit at position (reg index of qdu) is
// that qdu's {0,1} component — a low-bit-per-qdu convention, chosen over an
// MSB-first alternative for its congruence with a plain `bit := 1 << q`
// gate-application loop; documented once here and used consistently
// everywhere below.
type StateVector struct {
	Amplitudes []Complex
	reg        *Register
}

// NewStateVector returns the |Q0...Q0> baseline state for an empty
// register: a single amplitude, 1+0i. Dynamic QDU admission (Admit) expands
// it as new QduIds are first observed.
func NewStateVector() *StateVector {
	return &StateVector{Amplitudes: []Complex{1}, reg: NewRegister()}
}

// Register exposes the QduId<->bit-index mapping backing this state.
func (s *StateVector) Register() *Register { return s.reg }

// NumQdus is N, the current register size.
func (s *StateVector) NumQdus() int { return s.reg.Len() }

// Admit ensures id has a bit index, tensoring |0> onto the vector's high
// end (without reordering existing indices) the first time id is seen —
// dynamic QDU admission.
func (s *StateVector) Admit(id Id) int {
	idx, grown := s.reg.Admit(id)
	if grown {
		old := s.Amplitudes
		grownVec := make([]Complex, 2*len(old))
		copy(grownVec, old)
		s.Amplitudes = grownVec
	}
	return idx
}

// NormSquared computes sum |c_k|^2 directly rather than through a generic
// slice-reduction helper: the ε=1e-9 invariant check is on the hot path of
// every single mutation, and the explicit loop avoids an extra slice
// allocation and a sqrt gonum's cmplxs.Norm would otherwise perform (see
// Norm below for the non-critical-path use of that helper instead).
func (s *StateVector) NormSquared() float64 {
	var total float64
	for _, c := range s.Amplitudes {
		total += real(c)*real(c) + imag(c)*imag(c)
	}
	return total
}

// Norm is a diagnostic L2-norm helper for logging/debug output, not used on
// the enforced-invariant path. Uses gonum/cmplxs, which provides exactly
// this generic slice norm.
func (s *StateVector) Norm() float64 {
	return cmplxs.Norm(s.Amplitudes, 2)
}

// Normalize enforces the renormalization rule: if the squared norm has
// drifted past NormTolerance from 1, rescale; if it has collapsed below
// minNormSquared, report an Instability violation instead of dividing by
// (near) zero.
func (s *StateVector) Normalize() error {
	normSq := s.NormSquared()
	if math.Abs(normSq-1) <= NormTolerance {
		return nil
	}
	if normSq < minNormSquared {
		return newErr(KindInstability, "state vector norm collapsed to %g, below minimum %g", normSq, minNormSquared)
	}
	factor := complex(1/math.Sqrt(normSq), 0)
	cmplxs.Scale(factor, s.Amplitudes)
	return nil
}

// ApplySingle applies a Matrix2 to the QDU at bit index target, iterating
// every disjoint (k0, k1) pair that differs only at that bit — one
// matrix-agnostic pass over the gate-expansion rule a per-gate loop
// (`if i&bit == 0 { j := i | bit; ... }`) would otherwise repeat per gate.
func (s *StateVector) ApplySingle(target int, m Matrix2) {
	bit := 1 << target
	amps := s.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = m.Apply(amps[i], amps[j])
		}
	}
}

// ApplyControlled applies a Matrix2 to the QDU at bit index target,
// conditioned on the QDU at bit index control being 1 — equivalent to the
// 4x4 |0><0|(x)I + |1><1|(x)U but implemented as the cheaper masked
// single-qubit pass.
func (s *StateVector) ApplyControlled(control, target int, m Matrix2) {
	cBit := 1 << control
	tBit := 1 << target
	amps := s.Amplitudes
	for i := range amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			amps[i], amps[j] = m.Apply(amps[i], amps[j])
		}
	}
}

// ApplyJoint applies a full Matrix4 across the (a, b) bit-index pair,
// basis-ordered |bit_a bit_b>. Used by RelationalLock, whose
// controlled-phase interpretation is diagonal but expressed generally here
// so a future Bell-projection mode can reuse the same plumbing.
func (s *StateVector) ApplyJoint(a, b int, m Matrix4) {
	aBit := 1 << a
	bBit := 1 << b
	amps := s.Amplitudes
	for i := range amps {
		if i&aBit != 0 || i&bBit != 0 {
			continue
		}
		i00 := i
		i01 := i | bBit
		i10 := i | aBit
		i11 := i | aBit | bBit
		v := [4]Complex{amps[i00], amps[i01], amps[i10], amps[i11]}
		var out [4]Complex
		for r := 0; r < 4; r++ {
			var acc Complex
			for c := 0; c < 4; c++ {
				acc += m[r][c] * v[c]
			}
			out[r] = acc
		}
		amps[i00], amps[i01], amps[i10], amps[i11] = out[0], out[1], out[2], out[3]
	}
}

// Clone returns a deep copy, used by tests verifying unitary-composition
// invertibility without mutating the original fixture.
func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	regCopy := NewRegister()
	for _, id := range s.reg.Ids() {
		regCopy.Admit(id)
	}
	return &StateVector{Amplitudes: amps, reg: regCopy}
}

// CanonicalBytes returns the IEEE-754 little-endian real-then-imaginary
// byte layout of every amplitude, in index order — the exact encoding used
// as the stabilizer's deterministic hash input.
func (s *StateVector) CanonicalBytes() []byte {
	out := make([]byte, 0, len(s.Amplitudes)*16)
	var buf [8]byte
	for _, c := range s.Amplitudes {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(real(c)))
		out = append(out, buf[:]...)
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(imag(c)))
		out = append(out, buf[:]...)
	}
	return out
}
