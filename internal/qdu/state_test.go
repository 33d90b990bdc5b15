package qdu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateVectorIsNormalized(t *testing.T) {
	s := NewStateVector()
	assert.True(t, s.IsNormalized(), "fresh state vector must start normalized")
	assert.Equal(t, 0, s.NumQdus(), "fresh register should have 0 QDUs")
}

func TestAdmitGrowsWithoutReorderingExistingBits(t *testing.T) {
	s := NewStateVector()
	idx0 := s.Admit(Id(10))
	s.ApplySingle(idx0, Matrix2{{0, 1}, {1, 0}}) // flip q10 to |1>

	require.Len(t, s.Amplitudes, 2)
	assert.Equal(t, 1.0, cAbs(s.Amplitudes[1]), "expected amplitude mass at index 1 after flip")

	idx1 := s.Admit(Id(20))
	assert.Equal(t, 1, idx1, "second admitted QDU should take bit index 1")
	require.Len(t, s.Amplitudes, 4)
	// Growth tensors |0> onto the high end: the pre-growth |1> mass must
	// still sit at index 1, not have moved.
	assert.Equal(t, 1.0, cAbs(s.Amplitudes[1]), "growth must preserve existing bit-index 0 semantics")
}

func TestApplySingleHadamardProducesEqualSuperposition(t *testing.T) {
	s := NewStateVector()
	idx := s.Admit(Id(1))
	h, err := ResolvePattern(PatternSuperposition)
	require.NoError(t, err)
	s.ApplySingle(idx, h)
	require.NoError(t, s.Normalize())

	want := 1 / math.Sqrt2
	for _, amp := range s.Amplitudes {
		assert.InDelta(t, want, cAbs(amp), 1e-9)
	}
}

func TestApplyControlledOnlyFlipsWhenControlSet(t *testing.T) {
	s := NewStateVector()
	control := s.Admit(Id(1))
	target := s.Admit(Id(2))
	x, _ := ResolvePattern(PatternQualityFlip)

	s.ApplyControlled(control, target, x)
	assert.Equal(t, 1.0, cAbs(s.Amplitudes[0]), "CNOT on |00> must act as identity when control is 0")

	s2 := NewStateVector()
	c2 := s2.Admit(Id(1))
	t2 := s2.Admit(Id(2))
	s2.ApplySingle(c2, x) // control -> |1>
	s2.ApplyControlled(c2, t2, x)
	bit := 1<<c2 | 1<<t2
	assert.Equal(t, 1.0, cAbs(s2.Amplitudes[bit]), "CNOT on |control=1,target=0> must flip target to 1")
}

func TestNormalizeRejectsCollapsedNorm(t *testing.T) {
	s := NewStateVector()
	s.Amplitudes[0] = 0
	err := s.Normalize()
	assert.True(t, IsInstability(err), "expected Instability error for zero norm, got %v", err)
}

func TestCanonicalBytesIsDeterministic(t *testing.T) {
	s1 := NewStateVector()
	s1.Admit(Id(1))
	s2 := NewStateVector()
	s2.Admit(Id(1))

	b1 := s1.CanonicalBytes()
	b2 := s2.CanonicalBytes()
	assert.Equal(t, b1, b2, "canonical bytes must be deterministic across identical states")
}
