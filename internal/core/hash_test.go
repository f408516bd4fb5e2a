package core

import (
	"math/rand"
	"testing"
)

func TestRollMatchesDefinition(t *testing.T) {
	cases := []struct {
		h Hash
		c byte
	}{
		{0, 0},
		{0, 'a'},
		{1, 255},
		{0xFFFFFFFF, 'z'},
		{0xDEADBEEF, '.'},
	}
	for _, tc := range cases {
		want := (tc.h + Hash(tc.c)) * Multiplier
		if got := Roll(tc.h, tc.c); got != want {
			t.Errorf("Roll(%#x, %d) = %#x, want %#x", tc.h, tc.c, got, want)
		}
	}
}

func TestHashBytesFoldsRoll(t *testing.T) {
	if got := HashBytes(nil); got != 0 {
		t.Fatalf("HashBytes(nil) = %#x, want 0", got)
	}
	data := []byte("/other/m.dcx")
	var want Hash
	for _, c := range data {
		want = Roll(want, c)
	}
	if got := HashBytes(data); got != want {
		t.Fatalf("HashBytes = %#x, want %#x", got, want)
	}
}

func TestInverseOddValues(t *testing.T) {
	values := []Hash{1, 3, Multiplier, 0x12345679, 0xFFFFFFFF}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		values = append(values, Hash(rng.Uint32())|1)
	}
	for _, a := range values {
		if got := a * Inverse(a); got != 1 {
			t.Errorf("a * Inverse(a) = %#x for a = %#x, want 1", got, a)
		}
	}
}

func TestInverseEvenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Inverse(2) did not panic")
		}
	}()
	Inverse(2)
}

// The solver contract: with shift = target * Multiplier^-1, the character
// c = shift - h always satisfies (h + c) * Multiplier == target.
func TestSolverConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		h := Hash(rng.Uint32())
		target := Hash(rng.Uint32())
		shift := SuffixShift(nil, target)
		c := shift - h
		if got := (h + c) * Multiplier; got != target {
			t.Fatalf("(h+c)*M = %#x, want %#x (h=%#x, c=%#x)", got, target, h, c)
		}
	}
}

func TestSuffixShiftEmptySuffix(t *testing.T) {
	target := Hash(0xd7255946)
	if got, want := SuffixShift(nil, target), target*Inverse(Multiplier); got != want {
		t.Fatalf("SuffixShift(nil, target) = %#x, want %#x", got, want)
	}
}

// With a literal suffix the shift must still recover the exact character
// that completes the full string, suffix included.
func TestSuffixShiftWithSuffix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	suffixes := [][]byte{[]byte(".dcx"), []byte("x"), []byte(".tar.gz")}
	for _, suffix := range suffixes {
		for i := 0; i < 1000; i++ {
			h := Hash(rng.Uint32())
			solved := byte(rng.Intn(256))

			// Hash of the completed string: append solved, then the suffix.
			final := Roll(h, solved)
			for _, c := range suffix {
				final = Roll(final, c)
			}

			shift := SuffixShift(suffix, final)
			if got := shift - h; got != Hash(solved) {
				t.Fatalf("suffix %q: solved %#x, want %#x (h=%#x)", suffix, got, solved, h)
			}
		}
	}
}
