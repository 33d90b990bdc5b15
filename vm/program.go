package vm

import "fmt"

// BuildErrorKind enumerates the ways ProgramBuilder.Build can fail.
type BuildErrorKind int

const (
	BuildDuplicateLabel BuildErrorKind = iota
	BuildUnknownLabel
	BuildEmptyProgram
)

func (k BuildErrorKind) String() string {
	switch k {
	case BuildDuplicateLabel:
		return "DuplicateLabel"
	case BuildUnknownLabel:
		return "UnknownLabel"
	case BuildEmptyProgram:
		return "EmptyProgram"
	default:
		return "Unknown"
	}
}

// BuildError is returned by ProgramBuilder.Build.
type BuildError struct {
	Kind    BuildErrorKind
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("BuildError(%s): %s", e.Kind, e.Message)
}

// Program is an ordered instruction sequence plus its resolved label
// table. Labels never occupy PC time: they are stripped during Build and
// recorded only in Labels.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// InstructionAt returns the instruction at pc, or false if pc is out of
// bounds.
func (p *Program) InstructionAt(pc int) (Instruction, bool) {
	if pc < 0 || pc >= len(p.Instructions) {
		return Instruction{}, false
	}
	return p.Instructions[pc], true
}

// Len is the number of executable instructions (excluding labels).
func (p *Program) Len() int { return len(p.Instructions) }

// ProgramBuilder resolves labels to instruction indices in a single
// construction pass. A duplicate label definition is treated as fatal at
// Build time rather than silently overwriting the earlier one.
type ProgramBuilder struct {
	instructions []Instruction
	labels       map[string]int
	dupLabel     string
	hasDup       bool
}

// NewProgramBuilder returns an empty builder.
func NewProgramBuilder() *ProgramBuilder {
	return &ProgramBuilder{labels: make(map[string]int)}
}

// Add appends instruction to the program being built. Label instructions
// record their position instead of occupying a PC slot. Returns the
// builder for chaining.
func (b *ProgramBuilder) Add(instr Instruction) *ProgramBuilder {
	if instr.Kind == InstrLabel {
		pc := len(b.instructions)
		if _, exists := b.labels[instr.Label]; exists && !b.hasDup {
			b.hasDup = true
			b.dupLabel = instr.Label
		}
		b.labels[instr.Label] = pc
		return b
	}
	b.instructions = append(b.instructions, instr)
	return b
}

// AddMany appends every instruction in instrs, in order.
func (b *ProgramBuilder) AddMany(instrs ...Instruction) *ProgramBuilder {
	for _, instr := range instrs {
		b.Add(instr)
	}
	return b
}

// Build finalizes the Program, verifying every Jump/BranchIfZero target
// exists and that no label was defined twice.
func (b *ProgramBuilder) Build() (*Program, error) {
	if b.hasDup {
		return nil, &BuildError{Kind: BuildDuplicateLabel, Message: fmt.Sprintf("label %q defined more than once", b.dupLabel)}
	}
	if len(b.instructions) == 0 {
		return nil, &BuildError{Kind: BuildEmptyProgram, Message: "program has no instructions"}
	}

	for _, instr := range b.instructions {
		var target string
		switch instr.Kind {
		case InstrJump:
			target = instr.Label
		case InstrBranchIfZero:
			target = instr.Label
		default:
			continue
		}
		if _, ok := b.labels[target]; !ok {
			return nil, &BuildError{Kind: BuildUnknownLabel, Message: fmt.Sprintf("undefined label %q", target)}
		}
	}

	return &Program{Instructions: b.instructions, Labels: b.labels}, nil
}
