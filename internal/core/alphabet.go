package core

import (
	"fmt"
	"sort"
)

// byteRange is a half-open range [start, end) of byte codes.
type byteRange struct {
	start, end uint32
}

// Alphabet is the ordered set of characters that may appear in generated
// strings. It is built once per search run and shared read-only by every
// task, so there is no locking anywhere around it.
//
// Membership of a raw accumulator value can be tested two ways with
// identical verdicts: a descending scan over the contiguous ranges making
// up the alphabet, or an upper-bound check followed by a 256-bit mask
// lookup. The mask variant is the one the engine uses; the range variant
// wins only for alphabets that collapse to one or two runs.
type Alphabet struct {
	bytes  []byte // sorted, duplicate-free
	ranges []byteRange
	set    ByteSet
	end    uint32 // one past the largest character code
}

// NewAlphabet builds an Alphabet from chars. The input order is irrelevant;
// the table is kept sorted. Duplicates are rejected, as is NUL, which is
// reserved as the match record terminator.
func NewAlphabet(chars []byte) (*Alphabet, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("alphabet: no characters")
	}
	sorted := make([]byte, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if sorted[0] == 0 {
		return nil, fmt.Errorf("alphabet: NUL is reserved as the record terminator")
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("alphabet: duplicate character %q", sorted[i])
		}
	}

	a := &Alphabet{
		bytes: sorted,
		end:   uint32(sorted[len(sorted)-1]) + 1,
	}
	a.ranges = computeRanges(sorted)
	for _, b := range sorted {
		a.set.Add(b)
	}
	return a, nil
}

// computeRanges splits the sorted table into its contiguous runs.
func computeRanges(sorted []byte) []byteRange {
	ranges := []byteRange{{start: uint32(sorted[0])}}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			ranges[len(ranges)-1].end = uint32(sorted[i-1]) + 1
			ranges = append(ranges, byteRange{start: uint32(sorted[i])})
		}
	}
	ranges[len(ranges)-1].end = uint32(sorted[len(sorted)-1]) + 1
	return ranges
}

// Size returns the number of characters in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.bytes)
}

// Bytes returns the sorted character table. Callers must not modify it.
func (a *Alphabet) Bytes() []byte {
	return a.bytes
}

// Contains reports whether the raw accumulator value v is the code of an
// alphabet character, using the 256-bit mask. The upper-bound check comes
// first so the byte conversion below cannot alias a larger value.
func (a *Alphabet) Contains(v Hash) bool {
	if uint32(v) >= a.end {
		return false
	}
	return a.set.Contains(byte(v))
}

// ContainsRanges is the range-scan membership test. It returns the same
// verdict as Contains for every input.
func (a *Alphabet) ContainsRanges(v Hash) bool {
	for i := len(a.ranges) - 1; i >= 0; i-- {
		r := a.ranges[i]
		if uint32(v) >= r.end {
			return false
		}
		if uint32(v) >= r.start {
			return true
		}
	}
	return false
}

// Prefilter reports whether any candidate in cands could possibly be an
// alphabet character, testing only the upper bound across the whole batch.
// False positives are fine; the caller follows up with Contains per lane.
func (a *Alphabet) Prefilter(cands []Hash) bool {
	hit := false
	for _, c := range cands {
		hit = hit || uint32(c) < a.end
	}
	return hit
}
