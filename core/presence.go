package core

import "github.com/bits-and-blooms/bitset"

// presenceSet tracks which optional sub-fields a decoder has seen on the
// wire, one bit per tracked field index. This lets a decoder answer
// "was field N present" without re-scanning the input or relying on a
// sentinel zero value.
type presenceSet struct {
	bits *bitset.BitSet
}

func newPresenceSet(trackedFields uint) presenceSet {
	return presenceSet{bits: bitset.New(trackedFields)}
}

func (p presenceSet) mark(idx uint) { p.bits.Set(idx) }

func (p presenceSet) has(idx uint) bool { return p.bits.Test(idx) }
