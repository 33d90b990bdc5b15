package qdu

// OpKind discriminates the Operation union.
type OpKind int

const (
	OpInteractionPattern OpKind = iota
	OpPhaseShift
	OpControlledInteraction
	OpRelationalLock
)

// Operation is the tagged-union variant of a single state-mutating step.
// Only one field group is meaningful per Kind; Stabilize is handled
// separately by the VM/Stabilizer since it is not a state-mutating-in-place
// unitary step — it has materially different semantics and a return value.
type Operation struct {
	Kind OpKind

	Target  Id // InteractionPattern, PhaseShift, ControlledInteraction(target)
	Control Id // ControlledInteraction
	Qdu1    Id // RelationalLock
	Qdu2    Id // RelationalLock

	PatternId string  // InteractionPattern, ControlledInteraction
	Theta     float64 // PhaseShift, RelationalLock

	Establish bool // RelationalLock
}

// InteractionPattern builds a one-QDU 2x2-unitary operation.
func InteractionPattern(target Id, patternId string) Operation {
	return Operation{Kind: OpInteractionPattern, Target: target, PatternId: patternId}
}

// PhaseShift builds diag(1, e^{i*theta}) applied to target.
func PhaseShift(target Id, theta float64) Operation {
	return Operation{Kind: OpPhaseShift, Target: target, Theta: theta}
}

// ControlledInteraction builds the 4x4 |0><0|(x)I + |1><1|(x)U(patternId)
// operation. control must differ from target.
func ControlledInteraction(control, target Id, patternId string) Operation {
	return Operation{Kind: OpControlledInteraction, Control: control, Target: target, PatternId: patternId}
}

// RelationalLockOp builds the two-QDU non-unitary projection.
func RelationalLockOp(q1, q2 Id, theta float64, establish bool) Operation {
	return Operation{Kind: OpRelationalLock, Qdu1: q1, Qdu2: q2, Theta: theta, Establish: establish}
}

// InvolvedQdus returns every QduId this operation references, in the order
// they appear — used by the VM to discover/admit QDUs on first use.
func (op Operation) InvolvedQdus() []Id {
	switch op.Kind {
	case OpInteractionPattern, OpPhaseShift:
		return []Id{op.Target}
	case OpControlledInteraction:
		return []Id{op.Control, op.Target}
	case OpRelationalLock:
		return []Id{op.Qdu1, op.Qdu2}
	default:
		return nil
	}
}

// Apply dispatches the operation against s, admitting any QDUs it
// references that are not yet in the register and renormalizing the
// resulting vector afterward.
func (s *StateVector) Apply(op Operation) error {
	for _, id := range op.InvolvedQdus() {
		s.Admit(id)
	}

	switch op.Kind {
	case OpInteractionPattern:
		m, err := ResolvePattern(op.PatternId)
		if err != nil {
			return err
		}
		idx, _ := s.reg.Index(op.Target)
		s.ApplySingle(idx, m)
		return s.Normalize()

	case OpPhaseShift:
		idx, _ := s.reg.Index(op.Target)
		s.ApplySingle(idx, PhaseShiftMatrix(op.Theta))
		return s.Normalize()

	case OpControlledInteraction:
		controlIdx, _ := s.reg.Index(op.Control)
		targetIdx, _ := s.reg.Index(op.Target)
		if controlIdx == targetIdx {
			return newErr(KindInvalidOperation, "control and target QDUs must differ, both were %s", op.Control)
		}
		m, err := ResolvePattern(op.PatternId)
		if err != nil {
			return err
		}
		s.ApplyControlled(controlIdx, targetIdx, m)
		return s.Normalize()

	case OpRelationalLock:
		return s.RelationalLock(op.Qdu1, op.Qdu2, op.Theta, op.Establish)

	default:
		return newErr(KindInvalidOperation, "unrecognized operation kind %d", op.Kind)
	}
}
