package qdu

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// SplitMix64 is the fixed, documented deterministic PRNG this package
// commits to for stabilization. This is the standard SplitMix64 generator
// (Vigna's public domain construction), chosen because it is small,
// branch-free, and has no external dependency — exactly what's needed for
// output that stays identical across runs, machines, and thread counts.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 seeds the generator.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Next returns the next raw 64-bit output.
func (g *SplitMix64) Next() uint64 {
	g.state += 0x9E3779B97F4A7C15
	z := g.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float64 returns a uniform value in [0, 1), using the top 53 bits of Next
// the way standard splitmix64-to-double conversions do.
func (g *SplitMix64) Float64() float64 {
	return float64(g.Next()>>11) / (1 << 53)
}

// SeedFromState computes the deterministic 64-bit seed for a stabilization
// call: an FNV-1a 64-bit hash of the state vector's canonical bytes (real
// then imaginary per amplitude, IEEE-754 little-endian, in index order)
// followed by the sorted target QduId list, each as an 8-byte little-endian
// u64. FNV-1a is a single deterministic pass with no platform-dependent
// behavior, avoiding the randomly-seeded hash maps Go's builtin map
// iteration would otherwise introduce into anything that must reproduce
// bit-for-bit.
func SeedFromState(stateBytes []byte, targets []Id) uint64 {
	sorted := make([]Id, len(targets))
	copy(sorted, targets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	h := fnv.New64a()
	h.Write(stateBytes)
	var buf [8]byte
	for _, id := range sorted {
		binary.LittleEndian.PutUint64(buf[:], uint64(id))
		h.Write(buf[:])
	}
	return h.Sum64()
}
