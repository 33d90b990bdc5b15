// Package sim implements a non-VM façade: a bare ordered Circuit of
// Operations with a terminal Stabilize, run by a Simulator that exposes
// resolved StableStates without exposing classical memory or control flow.
package sim

import "onqsim/internal/qdu"

// Circuit is an ordered sequence of Operations, conventionally ending with
// a Stabilize step. Stabilize is represented as a dedicated slot rather
// than folded into Operations, since qdu.Operation does not carry
// Stabilize (see internal/qdu/operation.go's doc comment).
type Circuit struct {
	Ops       []qdu.Operation
	Stabilize []qdu.Id
}

// NewCircuit returns an empty Circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Then appends an Operation and returns the Circuit for chaining.
func (c *Circuit) Then(op qdu.Operation) *Circuit {
	c.Ops = append(c.Ops, op)
	return c
}

// StabilizeOn sets the terminal Stabilize target set.
func (c *Circuit) StabilizeOn(targets ...qdu.Id) *Circuit {
	c.Stabilize = targets
	return c
}
