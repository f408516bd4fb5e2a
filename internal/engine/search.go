// Package engine implements the parallel preimage search: work
// partitioning, the bounded depth-first enumeration with an algebraic
// shortcut for the final character, and the lock-free output collector.
package engine

import "collidergo/internal/core"

// Lanes is the batch width: this many adjacent task indices run in
// lockstep per group, with identical control flow and per-lane data. The
// fixed-width loops below are written so the compiler can vectorize them;
// behavior is the same as the scalar form either way.
const Lanes = 4

// Engine searches for fixed-length strings over an alphabet whose rolling
// hash equals a caller-supplied target. It is stateless across calls and
// safe for concurrent use; the output Buffer is the only shared mutable
// resource.
type Engine struct {
	alpha       *core.Alphabet
	parLen      int
	seqLen      int
	searchDepth int // seqLen - 1 enumerated positions; the last char is solved
	sizeM       core.M32
}

// New builds an Engine for the given dimensions. The alphabet must have at
// least two characters; parLen and seqLen are trusted to be within the
// core.MaxParLen / core.MaxSeqLen bounds (pkg/collider validates them).
func New(alpha *core.Alphabet, parLen, seqLen int) *Engine {
	return &Engine{
		alpha:       alpha,
		parLen:      parLen,
		seqLen:      seqLen,
		searchDepth: seqLen - 1,
		sizeM:       core.ComputeM32(uint32(alpha.Size())),
	}
}

// RecordLen returns the output record size: the literal prefix followed by
// up to seqLen sequential bytes, NUL-terminated when shorter.
func (e *Engine) RecordLen() int {
	return e.parLen + e.seqLen
}

// RunRange executes every task in [lo, hi), Lanes at a time. Bounds are
// uint64 so a range ending at 1<<32 cannot wrap.
func (e *Engine) RunRange(lo, hi uint64, p Params, out *Buffer) {
	for base := lo; base < hi; base += Lanes {
		e.RunGroup(uint32(base), p, out)
	}
}

// RunGroup executes tasks [base, min(base+Lanes, p.WorkItems)) in
// lockstep. base must be below p.WorkItems. Each group runs its full
// enumeration to completion; there is no cancellation.
//
// The traversal keeps one index and one per-lane accumulator per depth.
// An index of -1 means "before the first character"; stepping past the
// last character resets it and retreats one depth. At every visited node
// the solver derives the one character that would complete a match and the
// validator checks it against the alphabet, so matches of every sequential
// length from 2 up to seqLen fall out of a single pass. The final
// character is never enumerated: solving it costs O(1) and removes a
// factor of the alphabet size from the search.
func (e *Engine) RunGroup(base uint32, p Params, out *Buffer) {
	table := e.alpha.Bytes()
	size := len(table)

	lanes := int(p.WorkItems - base)
	if lanes > Lanes {
		lanes = Lanes
	}

	var lit [Lanes][core.MaxParLen]byte
	var start [Lanes]core.Hash
	for l := 0; l < lanes; l++ {
		start[l] = partition(base+uint32(l), p.PrefixHash, table, e.sizeM, uint32(size), lit[l][:e.parLen])
	}

	var idx [core.MaxSeqLen]int
	var acc [core.MaxSeqLen][Lanes]core.Hash
	var chosen [core.MaxSeqLen]byte
	var cand [Lanes]core.Hash

	depth := 0
	idx[0] = -1
	for depth >= 0 {
		idx[depth]++
		if idx[depth] == size {
			idx[depth] = -1
			depth--
			continue
		}
		c := table[idx[depth]]
		chosen[depth] = c

		parent := &start
		if depth > 0 {
			parent = &acc[depth-1]
		}
		for l := 0; l < Lanes; l++ {
			acc[depth][l] = core.Roll(parent[l], c)
		}
		for l := 0; l < Lanes; l++ {
			cand[l] = p.SuffixShift - acc[depth][l]
		}

		if e.alpha.Prefilter(cand[:lanes]) {
			for l := 0; l < lanes; l++ {
				if e.alpha.Contains(cand[l]) {
					e.emit(out, lit[l][:e.parLen], chosen[:depth+1], byte(cand[l]))
				}
			}
		}

		if depth+1 < e.searchDepth {
			depth++
			idx[depth] = -1
		}
	}
}

// emit writes one match record: the lane's literal prefix, the enumerated
// characters, the solved character, and zero padding up to seqLen (the
// first padding byte doubles as the terminator).
func (e *Engine) emit(out *Buffer, lit, enumerated []byte, solved byte) {
	var rec [core.MaxParLen + core.MaxSeqLen]byte
	n := copy(rec[:], lit)
	n += copy(rec[n:], enumerated)
	rec[n] = solved
	out.Append(rec[:e.parLen+e.seqLen])
}
