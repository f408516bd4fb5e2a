package core

import (
	"bytes"
	"testing"
)

func TestNewAlphabetRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		chars []byte
	}{
		{"empty", nil},
		{"duplicate", []byte("abca")},
		{"nul", []byte{'a', 0, 'b'}},
	}
	for _, tc := range cases {
		if _, err := NewAlphabet(tc.chars); err == nil {
			t.Errorf("%s: NewAlphabet(%q) succeeded, want error", tc.name, tc.chars)
		}
	}
}

func TestNewAlphabetSortsTable(t *testing.T) {
	a, err := NewAlphabet([]byte("_.abc0"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := a.Bytes(), []byte(".0_abc"); !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = %q, want %q", got, want)
	}
	if a.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", a.Size())
	}
}

// Both membership strategies must agree with a plain linear scan of the
// table for every byte value, and reject everything above the byte range.
func TestValidatorAgainstLinearScan(t *testing.T) {
	alphabets := [][]byte{
		[]byte(".0123456789_abcdefghijklmnopqrstuvwxyz"), // reference alphabet: 3 runs
		[]byte("abcd"),     // single run
		[]byte("ab"),       // minimal
		[]byte("az"),       // two isolated chars
		[]byte("ag_24"),    // scattered
		{1, 2, 3, 254, 255}, // range edges
	}
	for _, chars := range alphabets {
		a, err := NewAlphabet(chars)
		if err != nil {
			t.Fatalf("NewAlphabet(%q): %v", chars, err)
		}
		for v := 0; v < 256; v++ {
			want := bytes.IndexByte(a.Bytes(), byte(v)) >= 0
			if got := a.Contains(Hash(v)); got != want {
				t.Errorf("alphabet %q: Contains(%d) = %t, want %t", chars, v, got, want)
			}
			if got := a.ContainsRanges(Hash(v)); got != want {
				t.Errorf("alphabet %q: ContainsRanges(%d) = %t, want %t", chars, v, got, want)
			}
		}
		// Accumulator values beyond the byte range are never characters,
		// including ones whose low byte would be a member.
		for _, v := range []Hash{256, 256 + Hash(chars[0]), 0x8000_0061, 0xFFFFFFFF} {
			if a.Contains(v) {
				t.Errorf("alphabet %q: Contains(%#x) = true, want false", chars, v)
			}
			if a.ContainsRanges(v) {
				t.Errorf("alphabet %q: ContainsRanges(%#x) = true, want false", chars, v)
			}
		}
	}
}

// The prefilter may pass junk through but must never reject a batch that
// contains a genuine member.
func TestPrefilterNoFalseNegatives(t *testing.T) {
	a, err := NewAlphabet([]byte(".0123456789_abcdefghijklmnopqrstuvwxyz"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Prefilter([]Hash{0xFFFFFFFF, 0x10000, 300}) {
		t.Error("Prefilter passed a batch with no possible member")
	}
	if !a.Prefilter([]Hash{0xFFFFFFFF, Hash('a'), 0x10000}) {
		t.Error("Prefilter rejected a batch containing a member")
	}
	// Below the upper bound but not a member: a false positive is expected
	// and fine, the exact check runs afterwards.
	if !a.Prefilter([]Hash{Hash('!')}) {
		t.Error("Prefilter rejected a batch below the alphabet upper bound")
	}
}
