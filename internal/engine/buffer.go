package engine

import "sync/atomic"

// Buffer is the shared output collector: a fixed-capacity array of
// fixed-size match records plus a single counter of every match found.
//
// It is the only mutable state tasks share. A lone atomic fetch-and-add
// hands out disjoint record slots, so concurrent writers never collide and
// no lock exists anywhere. Appends past capacity are dropped, but the
// counter keeps the true total; the caller detects truncation by comparing
// Total against Cap.
type Buffer struct {
	data      []byte
	recordLen int
	capacity  uint32
	written   atomic.Uint32
}

// NewBuffer allocates a zeroed buffer for capacity records of recordLen
// bytes each.
func NewBuffer(capacity uint32, recordLen int) *Buffer {
	return &Buffer{
		data:      make([]byte, int(capacity)*recordLen),
		recordLen: recordLen,
		capacity:  capacity,
	}
}

// Append claims the next slot and stores rec there if the slot is within
// capacity; otherwise the record is dropped and only counted. rec must be
// exactly RecordLen bytes. Safe for concurrent use.
func (b *Buffer) Append(rec []byte) {
	slot := b.written.Add(1) - 1
	if slot < b.capacity {
		copy(b.data[int(slot)*b.recordLen:(int(slot)+1)*b.recordLen], rec)
	}
}

// RecordLen returns the size of one record in bytes.
func (b *Buffer) RecordLen() int {
	return b.recordLen
}

// Cap returns the buffer capacity in records.
func (b *Buffer) Cap() uint32 {
	return b.capacity
}

// Total returns the number of matches found, including dropped ones.
func (b *Buffer) Total() uint32 {
	return b.written.Load()
}

// Stored returns the number of records actually held.
func (b *Buffer) Stored() uint32 {
	if t := b.Total(); t < b.capacity {
		return t
	}
	return b.capacity
}

// Truncated reports whether matches were dropped for lack of capacity.
func (b *Buffer) Truncated() bool {
	return b.Total() > b.capacity
}

// Record returns the i-th stored record. i must be below Stored(). The
// returned slice aliases the buffer.
func (b *Buffer) Record(i uint32) []byte {
	return b.data[int(i)*b.recordLen : (int(i)+1)*b.recordLen]
}

// Reset clears the counter and zeroes the record area so the buffer can
// back another launch. Must not race with Append.
func (b *Buffer) Reset() {
	b.written.Store(0)
	clear(b.data)
}
