package core

import (
	"strings"
	"testing"
)

func TestDefaultSearchConfigIsValid(t *testing.T) {
	cfg := DefaultSearchConfig()
	if err := cfg.Validate(38); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestSearchConfigValidate(t *testing.T) {
	base := DefaultSearchConfig()

	cases := []struct {
		name         string
		mutate       func(*SearchConfig)
		alphabetSize int
		wantErr      string
	}{
		{"tiny alphabet", func(c *SearchConfig) {}, 1, "alphabet size"},
		{"par len zero", func(c *SearchConfig) { c.ParLen = 0 }, 38, "ParLen"},
		{"par len huge", func(c *SearchConfig) { c.ParLen = MaxParLen + 1 }, 38, "ParLen"},
		{"seq len one", func(c *SearchConfig) { c.SeqLen = 1 }, 38, "SeqLen"},
		{"seq len huge", func(c *SearchConfig) { c.SeqLen = MaxSeqLen + 1 }, 38, "SeqLen"},
		{"no threads", func(c *SearchConfig) { c.NumThreads = 0 }, 38, "NumThreads"},
		{"no attempts", func(c *SearchConfig) { c.MaxAttempts = 0 }, 38, "MaxAttempts"},
		{"index overflow", func(c *SearchConfig) { c.ParLen = 8 }, 256, "32-bit"},
	}
	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		err := cfg.Validate(tc.alphabetSize)
		if err == nil {
			t.Errorf("%s: Validate succeeded, want error containing %q", tc.name, tc.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}
		if _, ok := err.(ConfigError); !ok {
			t.Errorf("%s: error type %T, want ConfigError", tc.name, err)
		}
	}
}
