package engine

import "collidergo/internal/core"

// Params are the trusted per-launch inputs of the engine. The caller is
// responsible for computing them correctly; the engine validates nothing
// here (see the package doc of pkg/collider for the derivation).
type Params struct {
	// WorkItems bounds the dense task index range [0, WorkItems). Indices
	// at or beyond size^ParLen alias onto repeated literal prefixes, which
	// duplicates matches rather than crashing.
	WorkItems uint32
	// PrefixHash is the accumulator after absorbing the caller's fixed
	// external prefix.
	PrefixHash core.Hash
	// SuffixShift is the algebraically shifted target, normally from
	// core.SuffixShift.
	SuffixShift core.Hash
}

// partition maps task index t to its literal prefix and starting
// accumulator. t is decoded as a mixed-radix number in base size: each
// digit picks one byte of the sorted alphabet table, written to lit and
// rolled into the hash. Distinct t below size^len(lit) yield distinct
// literals. Pure; no shared state.
func partition(t uint32, prefixHash core.Hash, table []byte, m core.M32, size uint32, lit []byte) core.Hash {
	h := prefixHash
	for i := range lit {
		lit[i] = table[core.FastModU32(t, m, size)]
		h = core.Roll(h, lit[i])
		t = core.FastDivU32(t, m)
	}
	return h
}
