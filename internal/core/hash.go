package core

// Hash is the rolling-hash accumulator. The width is fixed at 32 bits and
// every operation wraps mod 2^32.
type Hash uint32

// Multiplier is the rolling-hash multiplier. It must stay odd: the
// algebraic solver relies on it having a multiplicative inverse mod 2^32.
const Multiplier Hash = 37

// Roll absorbs one character into the accumulator.
func Roll(h Hash, c byte) Hash {
	return (h + Hash(c)) * Multiplier
}

// HashBytes folds Roll over data starting from a zero accumulator.
func HashBytes(data []byte) Hash {
	var h Hash
	for _, c := range data {
		h = Roll(h, c)
	}
	return h
}

// Inverse computes a^-1 mod 2^32 with three Newton-Raphson iterations
// (https://arxiv.org/abs/2204.04342). Each iteration doubles the number of
// correct low bits, starting from the 5 bits of 3a^2.
// Panics if a is even; even values have no inverse mod a power of two.
func Inverse(a Hash) Hash {
	if a&1 == 0 {
		panic("core.Inverse: even value has no inverse mod 2^32")
	}
	x := 3*a ^ 2
	y := 1 - a*x
	x *= y + 1
	y *= y
	x *= y + 1
	y *= y
	x *= y + 1
	return x
}

// powMultiplier returns Multiplier^n mod 2^32.
func powMultiplier(n int) Hash {
	p := Hash(1)
	for i := 0; i < n; i++ {
		p *= Multiplier
	}
	return p
}

// SuffixShift precomputes the algebraically shifted target handed to the
// search engine. The solver recovers the final searched character of a
// candidate as shift - h, where h is the accumulator after the enumerated
// characters; appending that character and the fixed literal suffix then
// reproduces target exactly. With an empty suffix this reduces to
// target * Multiplier^-1.
func SuffixShift(suffix []byte, target Hash) Hash {
	return (target - HashBytes(suffix)) * Inverse(powMultiplier(len(suffix)+1))
}
