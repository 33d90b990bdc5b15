package qdu

import "fmt"

// Id is the opaque identifier a caller uses to name a QDU.
type Id uint64

func (id Id) String() string {
	return fmt.Sprintf("QDU(%d)", uint64(id))
}

// Register maps QduIds to stable bit indices, assigned in order of first
// appearance: the set of referenced QduIds is discovered on first use, and
// each id gets a stable bit index 0..N-1. The register grows dynamically as
// new ids are seen rather than requiring a fixed size up front.
type Register struct {
	indices map[Id]int
	order   []Id
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{indices: make(map[Id]int)}
}

// Len returns the number of QDUs admitted so far (N).
func (r *Register) Len() int {
	return len(r.order)
}

// Index returns the bit index for id and whether it was already known.
func (r *Register) Index(id Id) (int, bool) {
	idx, ok := r.indices[id]
	return idx, ok
}

// Admit returns the bit index for id, assigning the next free index (and
// reporting grown=true) if id has not been seen before.
func (r *Register) Admit(id Id) (idx int, grown bool) {
	if idx, ok := r.indices[id]; ok {
		return idx, false
	}
	idx = len(r.order)
	r.indices[id] = idx
	r.order = append(r.order, id)
	return idx, true
}

// Ids returns the admitted ids in bit-index order.
func (r *Register) Ids() []Id {
	out := make([]Id, len(r.order))
	copy(out, r.order)
	return out
}
