package main

// demo is a named, documented textual-assembly program for the onqsim TUI
// menu.
type demo struct {
	Name        string
	Description string
	Source      string
}

var demos = []demo{
	{
		Name:        "Superposition collapse",
		Description: "H(q0) then Stabilize(q0) — the canonical single-QDU collapse",
		Source: `H q0
STABILIZE q0
RECORD q0 m
HALT`,
	},
	{
		Name:        "Bell pair correlation",
		Description: "H(q0); CNOT(q0,q1); Stabilize both — outcomes must agree",
		Source: `H q0
CX q0 q1
STABILIZE q0 q1
RECORD q0 m0
RECORD q1 m1
HALT`,
	},
	{
		Name:        "Phase sequence failure",
		Description: "H;S;T;S†;Z on q0 then Stabilize — must raise Instability",
		Source: `H q0
S q0
T q0
SDG q0
Z q0
STABILIZE q0
HALT`,
	},
	{
		Name:        "PhiRotate",
		Description: "PhiRotate(q0) on |0> then Stabilize",
		Source: `PHI q0
STABILIZE q0
RECORD q0 m
HALT`,
	},
	{
		Name:        "Teleportation analog",
		Description: "prepare |+>, Bell pair, Bell-basis measurement, classically-controlled corrections",
		Source: `H q0
H q1
CX q1 q2
CX q0 q1
H q0
STABILIZE q0 q1
RECORD q0 m_msg
RECORD q1 m_alice
BRANCHIFZERO m_alice skip_x
X q2
skip_x:
BRANCHIFZERO m_msg skip_z
Z q2
skip_z:
STABILIZE q2
RECORD q2 m_bob
HALT`,
	},
	{
		Name:        "Classical control flow",
		Description: "branch-not-taken arithmetic, no quantum ops at all",
		Source: `ADD r 0 1
BRANCHIFZERO r skip
ADD r r 10
skip:
HALT`,
	},
}
