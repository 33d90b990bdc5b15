package vm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"onqsim/internal/qdu"
)

// This file implements a small line-oriented textual assembly syntax for
// vm.Program, using pre-compiled per-shape regexps and a pi-expression
// parser for angle literals. It is a convenience surface only: it produces
// the exact same Instruction/Program values a caller could build by hand
// with ProgramBuilder, and changes nothing about VM semantics.
//
// Grammar, one instruction per line (blank lines and lines starting with
// "//" are ignored):
//
//	name:                  label definition
//	H q0                   single-QDU gate (H X Y Z S SDG T TDG SX SXDG PHI PHIX ID)
//	PHASE q0 pi/2          phase shift
//	CX q0 q1               controlled gate: C<gate> control target
//	LOCK q0 q1 pi/2 [1]    RelationalLock(q0, q1, theta, establish)
//	STABILIZE q0 q1 ...    stabilize
//	RECORD q0 m            record into classical register m
//	ADD dest src1 src2     classical arithmetic: ADD SUB MUL AND OR XOR CMPEQ CMPLT CMPGT
//	NOT dest src           classical unary
//	JUMP label
//	BRANCHIFZERO reg label
//	HALT
var (
	labelLineRe = regexp.MustCompile(`^(\w+):$`)
	qduTokenRe  = regexp.MustCompile(`^q(\d+)$`)
)

var gateNames = map[string]string{
	"H":    qdu.PatternSuperposition,
	"X":    qdu.PatternQualityFlip,
	"Y":    qdu.PatternPhaseFlipY,
	"Z":    qdu.PatternPhaseIntroduce,
	"S":    qdu.PatternHalfPhase,
	"SDG":  qdu.PatternHalfPhaseInv,
	"T":    qdu.PatternQuarterPhase,
	"TDG":  qdu.PatternQuarterPhaseInv,
	"SX":   qdu.PatternSqrtFlip,
	"SXDG": qdu.PatternSqrtFlipInv,
	"PHI":  qdu.PatternPhiRotate,
	"PHIX": qdu.PatternPhiXRotate,
	"ID":   qdu.PatternIdentity,
}

var arithNames = map[string]ArithOp{
	"ADD":   ArithAdd,
	"SUB":   ArithSub,
	"MUL":   ArithMul,
	"AND":   ArithAnd,
	"OR":    ArithOr,
	"XOR":   ArithXor,
	"CMPEQ": ArithCmpEq,
	"CMPLT": ArithCmpLt,
	"CMPGT": ArithCmpGt,
}

// AsmError reports the source line a parse failure occurred on.
type AsmError struct {
	Line    int
	Text    string
	Message string
}

func (e *AsmError) Error() string {
	return fmt.Sprintf("asm:%d: %s (%q)", e.Line, e.Message, e.Text)
}

// Assemble parses src into a built Program.
func Assemble(src string) (*Program, error) {
	b := NewProgramBuilder()
	for i, rawLine := range strings.Split(src, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if m := labelLineRe.FindStringSubmatch(line); m != nil {
			b.Add(LabelInstr(m[1]))
			continue
		}
		instr, err := parseInstructionLine(line)
		if err != nil {
			return nil, &AsmError{Line: lineNo, Text: line, Message: err.Error()}
		}
		b.Add(instr)
	}
	return b.Build()
}

func parseInstructionLine(line string) (Instruction, error) {
	fields := strings.Fields(line)
	op := strings.ToUpper(fields[0])
	args := fields[1:]

	switch {
	case op == "HALT":
		return Halt(), nil
	case op == "JUMP":
		if len(args) != 1 {
			return Instruction{}, fmt.Errorf("JUMP expects 1 argument")
		}
		return Jump(args[0]), nil
	case op == "BRANCHIFZERO":
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("BRANCHIFZERO expects 2 arguments")
		}
		return BranchIfZero(args[0], args[1]), nil
	case op == "STABILIZE":
		if len(args) == 0 {
			return Instruction{}, fmt.Errorf("STABILIZE expects at least 1 QDU")
		}
		targets := make([]qdu.Id, len(args))
		for i, a := range args {
			id, err := parseQduToken(a)
			if err != nil {
				return Instruction{}, err
			}
			targets[i] = id
		}
		return Stabilize(targets...), nil
	case op == "RECORD":
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("RECORD expects QDU and register")
		}
		id, err := parseQduToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		return Record(id, args[1]), nil
	case op == "PHASE":
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("PHASE expects QDU and theta")
		}
		id, err := parseQduToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		theta, ok := parseParamExpr(args[1])
		if !ok {
			return Instruction{}, fmt.Errorf("invalid theta %q", args[1])
		}
		return QuantumOp(qdu.PhaseShift(id, theta)), nil
	case op == "LOCK":
		if len(args) != 3 && len(args) != 4 {
			return Instruction{}, fmt.Errorf("LOCK expects QDU QDU theta [establish]")
		}
		q1, err := parseQduToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		q2, err := parseQduToken(args[1])
		if err != nil {
			return Instruction{}, err
		}
		theta, ok := parseParamExpr(args[2])
		if !ok {
			return Instruction{}, fmt.Errorf("invalid theta %q", args[2])
		}
		establish := len(args) == 4 && args[3] == "1"
		return QuantumOp(qdu.RelationalLockOp(q1, q2, theta, establish)), nil
	case len(op) >= 2 && op[0] == 'C' && gateNames[op[1:]] != "":
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("%s expects control and target QDU", op)
		}
		control, err := parseQduToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		target, err := parseQduToken(args[1])
		if err != nil {
			return Instruction{}, err
		}
		return QuantumOp(qdu.ControlledInteraction(control, target, gateNames[op[1:]])), nil
	case gateNames[op] != "":
		if len(args) != 1 {
			return Instruction{}, fmt.Errorf("%s expects 1 QDU", op)
		}
		target, err := parseQduToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		return QuantumOp(qdu.InteractionPattern(target, gateNames[op])), nil
	case op == "NOT":
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("NOT expects dest and src")
		}
		return Not(args[0], parseOperand(args[1])), nil
	default:
		if arith, known := arithNames[op]; known {
			if len(args) != 3 {
				return Instruction{}, fmt.Errorf("%s expects dest, src1, src2", op)
			}
			return Arithmetic(arith, args[0], parseOperand(args[1]), parseOperand(args[2])), nil
		}
	}

	return Instruction{}, fmt.Errorf("unrecognized instruction %q", fields[0])
}

func parseQduToken(tok string) (qdu.Id, error) {
	m := qduTokenRe.FindStringSubmatch(tok)
	if m == nil {
		return 0, fmt.Errorf("expected QDU token like q0, got %q", tok)
	}
	n, _ := strconv.ParseUint(m[1], 10, 64)
	return qdu.Id(n), nil
}

func parseOperand(tok string) Operand {
	if v, err := strconv.ParseUint(tok, 10, 64); err == nil {
		return Imm(v)
	}
	return Reg(tok)
}

// piExprRe matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, -pi, -pi/2.
var piExprRe = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// parseParamExpr parses a plain float or a pi-expression.
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	lower := strings.ToLower(s)
	m := piExprRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	negative := m[1] == "-"
	coeff := 1.0
	if m[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
	}
	result := coeff * math.Pi
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}
	if negative {
		result = -result
	}
	return result, true
}
