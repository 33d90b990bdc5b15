package sim

import (
	"github.com/rs/zerolog"

	"onqsim/internal/qdu"
)

// StableState is a QDU's resolved classical value after stabilization.
type StableState struct {
	value uint64
}

// GetResolvedValue returns the resolved 0/1 value.
func (s StableState) GetResolvedValue() uint64 { return s.value }

// SimulationResult holds the StableStates produced by a Simulator run.
type SimulationResult struct {
	states map[qdu.Id]StableState
}

// GetStableState returns the StableState for id and whether it was
// resolved by the run (a QDU never covered by Stabilize has no entry).
func (r *SimulationResult) GetStableState(id qdu.Id) (StableState, bool) {
	s, ok := r.states[id]
	return s, ok
}

// Simulator runs a bare Circuit (no classical memory, no control flow) and
// returns only the resolved StableStates. Internally it is a thin wrapper
// over the same qdu.StateVector engine the VM uses.
type Simulator struct {
	logger zerolog.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger attaches ambient-stack logging, mirroring vm.WithLogger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// New returns a Simulator ready to Run Circuits.
func New(opts ...Option) *Simulator {
	s := &Simulator{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run applies every Operation in circuit in order, then — if circuit names
// a Stabilize target set — stabilizes it, returning the resolved
// StableStates. Operations are a pure function of (prior state,
// operation); Stabilize is a pure function of (prior state, target set).
func (s *Simulator) Run(circuit *Circuit) (*SimulationResult, error) {
	state := qdu.NewStateVector()
	for _, op := range circuit.Ops {
		if err := state.Apply(op); err != nil {
			s.logger.Error().Err(err).Msg("circuit operation failed")
			return nil, err
		}
	}

	result := &SimulationResult{states: make(map[qdu.Id]StableState)}
	if len(circuit.Stabilize) == 0 {
		return result, nil
	}

	for _, id := range circuit.Stabilize {
		state.Admit(id)
	}
	outcome, err := state.Stabilize(circuit.Stabilize)
	if err != nil {
		s.logger.Error().Err(err).Msg("stabilize failed")
		return nil, err
	}
	for id, v := range outcome {
		result.states[id] = StableState{value: v}
	}
	return result, nil
}
