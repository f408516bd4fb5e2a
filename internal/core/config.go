package core

import (
	"fmt"
	"runtime"
)

// Build-time bounds. MaxSeqLen sizes the fixed DFS stack arrays; MaxParLen
// sizes the per-lane literal buffers. Both are generous for a 32-bit task
// index space.
const (
	MaxParLen = 8
	MaxSeqLen = 12
)

// SearchConfig holds the parameters of one search run.
type SearchConfig struct {
	ParLen      int    // literal prefix characters assigned per task (the parallel dimension)
	SeqLen      int    // sequential characters; SeqLen-1 are enumerated, the last one is solved
	NumThreads  int    // worker goroutines per launch
	BufferCap   uint32 // output capacity in records; 0 sizes from the expected collision count
	MaxAttempts int    // launches before giving up on a truncated result
	Verbose     bool
}

// DefaultSearchConfig mirrors the dimensions of the reference GPU launch:
// four literal characters per task, five sequential characters.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		ParLen:      4,
		SeqLen:      5,
		NumThreads:  runtime.NumCPU(),
		MaxAttempts: 3,
		Verbose:     false,
	}
}

// Validate checks the configuration against an alphabet of the given size.
func (c *SearchConfig) Validate(alphabetSize int) error {
	if alphabetSize < 2 {
		return ConfigError{Msg: fmt.Sprintf("alphabet size %d, need at least 2", alphabetSize)}
	}
	if c.ParLen < 1 || c.ParLen > MaxParLen {
		return ConfigError{Msg: fmt.Sprintf("ParLen %d out of range [1, %d]", c.ParLen, MaxParLen)}
	}
	if c.SeqLen < 2 || c.SeqLen > MaxSeqLen {
		return ConfigError{Msg: fmt.Sprintf("SeqLen %d out of range [2, %d]", c.SeqLen, MaxSeqLen)}
	}
	if c.NumThreads < 1 {
		return ConfigError{Msg: fmt.Sprintf("NumThreads %d, need at least 1", c.NumThreads)}
	}
	if c.MaxAttempts < 1 {
		return ConfigError{Msg: fmt.Sprintf("MaxAttempts %d, need at least 1", c.MaxAttempts)}
	}
	n := uint64(1)
	for i := 0; i < c.ParLen; i++ {
		n *= uint64(alphabetSize)
		if n > uint64(^uint32(0)) {
			return ConfigError{Msg: fmt.Sprintf("%d^%d tasks do not fit a 32-bit index", alphabetSize, c.ParLen)}
		}
	}
	return nil
}
