package qdu

// Outcome is the result of a Stabilize call: the chosen 0/1 value for each
// targeted QDU, recorded into the stabilization cache as per-QDU values.
type Outcome map[Id]uint64

// outcomeBucket accumulates the marginal mass P(v) and the dominant
// ("representative") basis index for one target-bit assignment v.
type outcomeBucket struct {
	mass    float64
	repIdx  int
	repAbs  float64
	hasRep  bool
	present bool
}

// Stabilize enumerates the marginal outcomes of the target set, filters by
// Phase Coherence, scores the survivors, seeds a deterministic PRNG from
// the pre-collapse state bytes and the sorted target list, selects one
// outcome, and collapses the state onto it. Generalizes a whole-state-only
// collapse into a partial-target marginal form so a subset of QDUs can be
// stabilized without forcing every other QDU to resolve at the same time
// (see DESIGN.md for the reasoning behind that choice).
func (s *StateVector) Stabilize(targets []Id) (Outcome, error) {
	uniqueTargets := dedupe(targets)
	if len(uniqueTargets) == 0 {
		return nil, newErr(KindInvalidOperation, "Stabilize requires at least one target QDU")
	}

	bitOf := make([]int, len(uniqueTargets))
	for i, id := range uniqueTargets {
		idx, ok := s.reg.Index(id)
		if !ok {
			return nil, newErr(KindReference, "QDU %s has no assigned bit index", id)
		}
		bitOf[i] = idx
	}

	numOutcomes := 1 << len(uniqueTargets)
	buckets := make([]outcomeBucket, numOutcomes)

	for k, amp := range s.Amplitudes {
		a := cAbs(amp)
		if a == 0 {
			continue
		}
		v := 0
		for i, bit := range bitOf {
			if k&(1<<bit) != 0 {
				v |= 1 << i
			}
		}
		b := &buckets[v]
		b.present = true
		b.mass += a * a
		if !b.hasRep || a > b.repAbs {
			b.repAbs = a
			b.repIdx = k
			b.hasRep = true
		}
	}

	type scored struct {
		v     int
		score float64
	}
	var accepted []scored
	var total float64
	for v := 0; v < numOutcomes; v++ {
		b := buckets[v]
		if !b.present {
			continue
		}
		c1 := s.PhaseCoherence(b.repIdx)
		if c1 <= CoherenceThreshold {
			continue
		}
		score := c1 * b.mass
		if score <= 0 {
			continue
		}
		accepted = append(accepted, scored{v: v, score: score})
		total += score
	}

	if len(accepted) == 0 || total <= 0 {
		return nil, newErr(KindInstability, "No possible outcome met amplitude and C1 Phase Coherence (>0.618) criteria.")
	}

	seed := SeedFromState(s.CanonicalBytes(), uniqueTargets)
	rng := NewSplitMix64(seed)
	u := rng.Float64() * total

	chosen := accepted[len(accepted)-1].v
	var cumulative float64
	for _, sc := range accepted {
		cumulative += sc.score
		if cumulative >= u {
			chosen = sc.v
			break
		}
	}

	chosenMass := buckets[chosen].mass
	for k := range s.Amplitudes {
		v := 0
		for i, bit := range bitOf {
			if k&(1<<bit) != 0 {
				v |= 1 << i
			}
		}
		if v != chosen {
			s.Amplitudes[k] = 0
		}
	}
	if err := s.normalizeTo(chosenMass); err != nil {
		return nil, err
	}

	outcome := make(Outcome, len(uniqueTargets))
	for i, id := range uniqueTargets {
		outcome[id] = uint64((chosen >> i) & 1)
	}
	return outcome, nil
}

// normalizeTo is the post-collapse renormalization step for the (already
// zero-masked) amplitude slice. It checks the known marginal mass against
// the instability floor, then rescales through Normalize, which recomputes
// NormSquared (equal to mass up to rounding) and divides by its square root.
func (s *StateVector) normalizeTo(mass float64) error {
	if mass < minNormSquared {
		return newErr(KindInstability, "stabilization collapse mass %g below minimum %g", mass, minNormSquared)
	}
	return s.Normalize()
}

func dedupe(ids []Id) []Id {
	seen := make(map[Id]bool, len(ids))
	out := make([]Id, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
