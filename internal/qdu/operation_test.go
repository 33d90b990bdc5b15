package qdu

import "testing"

func TestApplyAdmitsQdusOnFirstUse(t *testing.T) {
	s := NewStateVector()
	if err := s.Apply(InteractionPattern(Id(5), PatternQualityFlip)); err != nil {
		t.Fatal(err)
	}
	if s.NumQdus() != 1 {
		t.Fatalf("expected 1 admitted QDU, got %d", s.NumQdus())
	}
	idx, ok := s.Register().Index(Id(5))
	if !ok || idx != 0 {
		t.Fatalf("expected QDU 5 at bit index 0")
	}
	if cAbs(s.Amplitudes[1]) != 1 {
		t.Fatalf("QualityFlip on a fresh |0> must yield |1>")
	}
}

func TestApplyControlledInteractionRejectsSameControlAndTarget(t *testing.T) {
	s := NewStateVector()
	err := s.Apply(ControlledInteraction(Id(1), Id(1), PatternQualityFlip))
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInvalidOperation {
		t.Fatalf("expected InvalidOperation, got %v", err)
	}
}

func TestApplyPropagatesUnknownPattern(t *testing.T) {
	s := NewStateVector()
	err := s.Apply(InteractionPattern(Id(1), "Bogus"))
	if !isUnknownPattern(err) {
		t.Fatalf("expected UnknownPattern, got %v", err)
	}
}

func isUnknownPattern(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindUnknownPattern
}

func TestInvolvedQdusPerOperationKind(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		want []Id
	}{
		{"pattern", InteractionPattern(Id(1), PatternIdentity), []Id{1}},
		{"phase", PhaseShift(Id(2), 0.5), []Id{2}},
		{"controlled", ControlledInteraction(Id(1), Id(2), PatternQualityFlip), []Id{1, 2}},
		{"lock", RelationalLockOp(Id(3), Id(4), 0.1, false), []Id{3, 4}},
	}
	for _, c := range cases {
		got := c.op.InvolvedQdus()
		if len(got) != len(c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
			}
		}
	}
}
