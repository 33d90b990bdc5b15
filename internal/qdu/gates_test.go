package qdu

import (
	"math/cmplx"
	"testing"
)

func isUnitary(m Matrix2) bool {
	product := m.Mul(m.Dagger())
	return cmplx.Abs(product[0][0]-1) < 1e-9 &&
		cmplx.Abs(product[0][1]) < 1e-9 &&
		cmplx.Abs(product[1][0]) < 1e-9 &&
		cmplx.Abs(product[1][1]-1) < 1e-9
}

func TestCatalogueGatesAreUnitary(t *testing.T) {
	patterns := []string{
		PatternIdentity, PatternQualityFlip, PatternPhaseIntroduce,
		PatternPhaseFlipY, PatternSuperposition, PatternHalfPhase,
		PatternHalfPhaseInv, PatternQuarterPhase, PatternQuarterPhaseInv,
		PatternSqrtFlip, PatternSqrtFlipInv, PatternPhiRotate, PatternPhiXRotate,
	}
	for _, p := range patterns {
		m, err := ResolvePattern(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if !isUnitary(m) {
			t.Errorf("%s is not unitary: %+v", p, m)
		}
	}
}

func TestResolvePatternUnknownIsFatal(t *testing.T) {
	_, err := ResolvePattern("NotAGate")
	e, ok := err.(*Error)
	if !ok || e.Kind != KindUnknownPattern {
		t.Fatalf("expected UnknownPattern error, got %v", err)
	}
}

func TestPhaseShiftZeroIsIdentity(t *testing.T) {
	m := PhaseShiftMatrix(0)
	if !isUnitary(m) {
		t.Fatalf("PhaseShift(0) must be unitary")
	}
	if m[0][0] != 1 || m[1][1] != 1 || m[0][1] != 0 || m[1][0] != 0 {
		t.Fatalf("PhaseShift(0) must equal the identity, got %+v", m)
	}
}

func TestQualitativeYAliasesPhaseFlipY(t *testing.T) {
	a, err := ResolvePattern(PatternPhaseFlipY)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ResolvePattern(PatternQualitativeY)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("QualitativeY must be identical to PhaseFlipY")
	}
}
