package vm

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"onqsim/internal/qdu"
)

// RuntimeError covers VM dispatch failures: PC ran off the end
// without Halt, or Record read a QDU with no prior Stabilize.
type RuntimeError struct {
	PC      int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError at PC=%d: %s", e.PC, e.Message)
}

// Vm is the instruction dispatcher: a state-vector engine, classical
// memory, a program counter, and a transient last-stabilization cache.
// QDUs are admitted dynamically as instructions reference them rather than
// being collected and sized up front (see qdu.StateVector.Admit).
type Vm struct {
	engine            *qdu.StateVector
	classicalMemory   map[string]uint64
	lastStabilization qdu.Outcome
	pc                int
	halted            bool

	logger zerolog.Logger
}

// Option configures a Vm at construction time.
type Option func(*Vm)

// WithLogger attaches a zerolog.Logger the VM uses for Debug/Info/Error
// instruction-dispatch events. Logging is observational only — the core's
// correctness never depends on what is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Vm) { v.logger = logger }
}

// New returns a freshly initialized Vm, ready for Run.
func New(opts ...Option) *Vm {
	v := &Vm{
		classicalMemory: make(map[string]uint64),
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Vm) reset() {
	v.engine = qdu.NewStateVector()
	v.classicalMemory = make(map[string]uint64)
	v.lastStabilization = nil
	v.pc = 0
	v.halted = false
}

// Run executes program from PC=0 until Halt or a fatal error. PC running
// past the end of the program without hitting Halt is itself a fatal
// RuntimeError: programs must Halt explicitly.
func (v *Vm) Run(program *Program) error {
	v.reset()
	runID := uuid.New()
	log := v.logger.With().Str("run_id", runID.String()).Logger()
	log.Info().Int("instructions", program.Len()).Msg("vm run start")

	for !v.halted {
		instr, ok := program.InstructionAt(v.pc)
		if !ok {
			return &RuntimeError{PC: v.pc, Message: fmt.Sprintf("program counter out of bounds (0..%d) without Halt", program.Len())}
		}

		log.Debug().Int("pc", v.pc).Int("kind", int(instr.Kind)).Msg("dispatch")
		nextPC := v.pc + 1

		switch instr.Kind {
		case InstrQuantumOp:
			if err := v.engine.Apply(instr.Op); err != nil {
				log.Error().Err(err).Int("pc", v.pc).Msg("quantum op failed")
				return err
			}

		case InstrStabilize:
			if len(instr.Targets) == 0 {
				return &qdu.Error{Kind: qdu.KindInvalidOperation, Message: "Stabilize requires at least one target QDU"}
			}
			for _, id := range instr.Targets {
				v.engine.Admit(id)
			}
			outcome, err := v.engine.Stabilize(instr.Targets)
			if err != nil {
				log.Error().Err(err).Int("pc", v.pc).Msg("stabilize failed")
				return err
			}
			v.lastStabilization = outcome
			log.Debug().Interface("outcome", outcome).Msg("stabilized")

		case InstrRecord:
			value, ok := v.lastStabilization[instr.Qdu]
			if !ok {
				return &RuntimeError{PC: v.pc, Message: fmt.Sprintf("no recent stabilization for QDU %s", instr.Qdu)}
			}
			v.classicalMemory[instr.Register] = value

		case InstrJump:
			target, ok := program.Labels[instr.Label]
			if !ok {
				return &RuntimeError{PC: v.pc, Message: fmt.Sprintf("jump target label %q not found", instr.Label)}
			}
			nextPC = target

		case InstrBranchIfZero:
			if v.classicalMemory[instr.Register] == 0 {
				target, ok := program.Labels[instr.Label]
				if !ok {
					return &RuntimeError{PC: v.pc, Message: fmt.Sprintf("branch target label %q not found", instr.Label)}
				}
				nextPC = target
			}

		case InstrArith:
			v.execArith(instr)

		case InstrHalt:
			v.halted = true

		case InstrLabel:
			// Labels are stripped at build time; InstrLabel never
			// appears in a built Program's instruction slice.

		default:
			return &RuntimeError{PC: v.pc, Message: fmt.Sprintf("unrecognized instruction kind %d", instr.Kind)}
		}

		v.pc = nextPC
	}

	log.Info().Msg("vm run halted")
	return nil
}

func (v *Vm) execArith(instr Instruction) {
	mem := v.classicalMemory
	val1 := instr.Src1.resolve(mem)
	switch instr.Arith {
	case ArithAdd:
		mem[instr.Dest] = val1 + instr.Src2.resolve(mem)
	case ArithSub:
		mem[instr.Dest] = val1 - instr.Src2.resolve(mem)
	case ArithMul:
		mem[instr.Dest] = val1 * instr.Src2.resolve(mem)
	case ArithAnd:
		mem[instr.Dest] = val1 & instr.Src2.resolve(mem)
	case ArithOr:
		mem[instr.Dest] = val1 | instr.Src2.resolve(mem)
	case ArithXor:
		mem[instr.Dest] = val1 ^ instr.Src2.resolve(mem)
	case ArithNot:
		mem[instr.Dest] = ^val1
	case ArithCmpEq:
		mem[instr.Dest] = boolToU64(val1 == instr.Src2.resolve(mem))
	case ArithCmpLt:
		mem[instr.Dest] = boolToU64(val1 < instr.Src2.resolve(mem))
	case ArithCmpGt:
		mem[instr.Dest] = boolToU64(val1 > instr.Src2.resolve(mem))
	}
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// GetClassicalRegister reads register, defaulting to 0 if unset.
func (v *Vm) GetClassicalRegister(register string) uint64 {
	return v.classicalMemory[register]
}

// GetClassicalMemory returns a snapshot copy of every classical register.
func (v *Vm) GetClassicalMemory() map[string]uint64 {
	out := make(map[string]uint64, len(v.classicalMemory))
	for k, val := range v.classicalMemory {
		out[k] = val
	}
	return out
}

// State returns the underlying state vector engine, or nil if Run has not
// been called yet.
func (v *Vm) State() *qdu.StateVector {
	return v.engine
}
