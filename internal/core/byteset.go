package core

import "math/bits"

// ByteSet is a fixed 256-bit membership set over byte values. Four 64-bit
// words cover the whole byte range, so lookups are a shift and a mask with
// no bounds to grow or shrink. The zero value is the empty set.
type ByteSet struct {
	words [4]uint64
}

// Add inserts b into the set.
func (s *ByteSet) Add(b byte) {
	s.words[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s.words[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of bytes in the set.
func (s *ByteSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}
