package qdu

import (
	"math"
	"testing"
)

func TestRelationalLockRejectsSameQdu(t *testing.T) {
	s := NewStateVector()
	err := s.RelationalLock(Id(1), Id(1), math.Pi/2, false)
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInvalidOperation {
		t.Fatalf("expected InvalidOperation for identical QDUs, got %v", err)
	}
}

func TestRelationalLockLeavesStateNormalized(t *testing.T) {
	s := NewStateVector()
	q1, q2 := Id(1), Id(2)
	i1 := s.Admit(q1)
	i2 := s.Admit(q2)
	h, _ := ResolvePattern(PatternSuperposition)
	s.ApplySingle(i1, h)
	s.ApplySingle(i2, h)

	if err := s.RelationalLock(q1, q2, math.Pi/3, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsNormalized() {
		t.Fatalf("RelationalLock must preserve normalization")
	}
}

func TestRelationalLockOnlyPhasesTheAllOnesBasisState(t *testing.T) {
	s := NewStateVector()
	q1, q2 := Id(1), Id(2)
	i1 := s.Admit(q1)
	i2 := s.Admit(q2)
	x, _ := ResolvePattern(PatternQualityFlip)
	s.ApplySingle(i1, x)
	s.ApplySingle(i2, x) // state is now |11>

	if err := s.RelationalLock(q1, q2, math.Pi/2, false); err != nil {
		t.Fatal(err)
	}
	bit := 1<<i1 | 1<<i2
	amp := s.Amplitudes[bit]
	if math.Abs(real(amp)) > 1e-9 || math.Abs(imag(amp)-1) > 1e-9 {
		t.Fatalf("RelationalLock(pi/2) on |11> should leave amplitude i, got %v", amp)
	}
}
