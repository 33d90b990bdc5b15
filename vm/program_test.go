package vm

import "testing"

func TestProgramBuilderRejectsDuplicateLabel(t *testing.T) {
	b := NewProgramBuilder()
	b.Add(LabelInstr("loop"))
	b.Add(Halt())
	b.Add(LabelInstr("loop"))
	_, err := b.Build()
	be, ok := err.(*BuildError)
	if !ok || be.Kind != BuildDuplicateLabel {
		t.Fatalf("expected BuildDuplicateLabel, got %v", err)
	}
}

func TestProgramBuilderRejectsUnknownJumpTarget(t *testing.T) {
	b := NewProgramBuilder()
	b.Add(Jump("nowhere"))
	_, err := b.Build()
	be, ok := err.(*BuildError)
	if !ok || be.Kind != BuildUnknownLabel {
		t.Fatalf("expected BuildUnknownLabel, got %v", err)
	}
}

func TestProgramBuilderRejectsUnknownBranchTarget(t *testing.T) {
	b := NewProgramBuilder()
	b.Add(BranchIfZero("r", "nowhere"))
	_, err := b.Build()
	be, ok := err.(*BuildError)
	if !ok || be.Kind != BuildUnknownLabel {
		t.Fatalf("expected BuildUnknownLabel, got %v", err)
	}
}

func TestProgramBuilderRejectsEmptyProgram(t *testing.T) {
	b := NewProgramBuilder()
	_, err := b.Build()
	be, ok := err.(*BuildError)
	if !ok || be.Kind != BuildEmptyProgram {
		t.Fatalf("expected BuildEmptyProgram, got %v", err)
	}
}

func TestProgramBuilderLabelsDoNotOccupyPC(t *testing.T) {
	b := NewProgramBuilder()
	b.Add(LabelInstr("start"))
	b.Add(Halt())
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Fatalf("expected 1 executable instruction, got %d", p.Len())
	}
	if p.Labels["start"] != 0 {
		t.Fatalf("expected label 'start' to resolve to PC 0, got %d", p.Labels["start"])
	}
}

func TestProgramBuilderForwardJumpResolves(t *testing.T) {
	b := NewProgramBuilder()
	b.Add(Jump("end"))
	b.Add(Halt())
	b.Add(LabelInstr("end"))
	b.Add(Halt())
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if p.Labels["end"] != 2 {
		t.Fatalf("expected 'end' to resolve to PC 2, got %d", p.Labels["end"])
	}
}
