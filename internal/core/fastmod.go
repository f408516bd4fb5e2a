package core

import "math/bits"

// Lemire's fastmod (https://github.com/lemire/fastmod): division and
// modulus by a runtime constant via one precomputed magic number. The work
// partitioner decodes every task index with a div/mod chain in base
// len(alphabet), so the strength reduction is paid once per run instead of
// once per digit.

// M32 is the 64-bit magic constant for 32-bit fast division.
type M32 uint64

// ComputeM32 computes the magic number for divisor d > 0:
// M = ceil( (1<<64) / d ).
func ComputeM32(d uint32) M32 {
	if d == 0 {
		panic("core.ComputeM32: division by zero")
	}
	return M32(^uint64(0)/uint64(d) + 1)
}

// FastModU32 computes a % d given m = ComputeM32(d).
func FastModU32(a uint32, m M32, d uint32) uint32 {
	lowbits := uint64(m) * uint64(a)
	hi, _ := bits.Mul64(lowbits, uint64(d))
	return uint32(hi)
}

// FastDivU32 computes a / d given m = ComputeM32(d), for d > 1.
func FastDivU32(a uint32, m M32) uint32 {
	hi, _ := bits.Mul64(uint64(m), uint64(a))
	return uint32(hi)
}
