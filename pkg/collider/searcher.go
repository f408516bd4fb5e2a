// Package collider is the host side of the preimage search engine. It
// derives the launch parameters the engine trusts blindly (prefix hash,
// shifted target, task count, buffer sizing), fans the task range out
// across worker goroutines, and decodes the raw output records.
//
// A search covers every string of the form
//
//	prefix + literal + sequential + suffix
//
// where literal is ParLen alphabet characters (one distinct literal per
// task), sequential is between 2 and SeqLen alphabet characters, and the
// rolling hash of the whole string equals the target. The engine never
// enumerates the last sequential character; it is solved algebraically,
// which is why the shifted target is precomputed here.
package collider

import (
	"bytes"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"collidergo/internal/core"
	"collidergo/internal/engine"
	"collidergo/internal/util"
)

// maxAutoRecords caps automatic buffer sizing at 16M records.
const maxAutoRecords = 1 << 24

// chunkGroups is the number of lane groups a worker claims at a time.
// Large enough to keep the claim counter cold, small enough to balance
// uneven progress across workers.
const chunkGroups = 1024

// Searcher runs preimage searches for one alphabet and one set of search
// dimensions. Safe for concurrent use; every Find gets its own buffer.
type Searcher struct {
	alpha *core.Alphabet
	cfg   core.SearchConfig
	eng   *engine.Engine
}

// New validates the configuration and builds a Searcher.
func New(alphabet []byte, cfg core.SearchConfig) (*Searcher, error) {
	a, err := core.NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(a.Size()); err != nil {
		return nil, err
	}
	return &Searcher{
		alpha: a,
		cfg:   cfg,
		eng:   engine.New(a, cfg.ParLen, cfg.SeqLen),
	}, nil
}

// Alphabet returns the searcher's alphabet.
func (s *Searcher) Alphabet() *core.Alphabet {
	return s.alpha
}

// Result is the outcome of one search.
type Result struct {
	Matches   []core.Match
	Total     uint32 // true number of matches found, including dropped ones
	Truncated bool   // the final attempt still overflowed its buffer
	Attempts  int
	Elapsed   time.Duration
}

// Find reports every match for the given external prefix, suffix and
// target hash. The target is in the engine's h' = (h+c)*37 convention,
// i.e. what core.HashBytes returns; a value harvested from the widespread
// h' = h*37 + c fold must be multiplied by core.Multiplier first (the
// collider command does this for its --target flag).
// If the output buffer overflows, the search is relaunched
// with a buffer grown to the now-known true match count, up to
// MaxAttempts times; the search is deterministic, so the second attempt
// always fits.
func (s *Searcher) Find(prefix, suffix []byte, target core.Hash) (*Result, error) {
	workItems, err := s.workItems()
	if err != nil {
		return nil, err
	}
	params := engine.Params{
		WorkItems:   workItems,
		PrefixHash:  core.HashBytes(prefix),
		SuffixShift: core.SuffixShift(suffix, target),
	}

	capacity := s.cfg.BufferCap
	if capacity == 0 {
		capacity = s.autoCapacity()
	}

	start := time.Now()
	var buf *engine.Buffer
	attempts := 0
	for {
		attempts++
		buf = engine.NewBuffer(capacity, s.eng.RecordLen())
		s.launch(params, buf)
		if !buf.Truncated() || attempts >= s.cfg.MaxAttempts {
			break
		}
		util.Log(s.cfg.Verbose, "output buffer overflowed (%d matches, capacity %d), relaunching",
			buf.Total(), capacity)
		capacity = buf.Total() + 16
	}

	res := &Result{
		Total:     buf.Total(),
		Truncated: buf.Truncated(),
		Attempts:  attempts,
		Elapsed:   time.Since(start),
	}
	for i := uint32(0); i < buf.Stored(); i++ {
		res.Matches = append(res.Matches, decodeRecord(buf.Record(i), s.cfg.ParLen))
	}
	util.Log(s.cfg.Verbose, "found %d matches over %d tasks in %v (%d attempts)",
		res.Total, workItems, res.Elapsed, attempts)
	return res, nil
}

// launch fans the task range out over NumThreads workers. Workers claim
// contiguous chunks of lane groups from a shared counter; the output
// buffer is the only other shared state, so there is nothing to lock.
func (s *Searcher) launch(p engine.Params, buf *engine.Buffer) {
	groups := (uint64(p.WorkItems) + engine.Lanes - 1) / engine.Lanes
	prog := util.NewProgress(groups, "search", s.cfg.Verbose)

	var next atomic.Uint64
	var wg sync.WaitGroup
	wg.Add(s.cfg.NumThreads)
	for t := 0; t < s.cfg.NumThreads; t++ {
		go func() {
			defer wg.Done()
			for {
				g := next.Add(chunkGroups) - chunkGroups
				if g >= groups {
					return
				}
				end := g + chunkGroups
				if end > groups {
					end = groups
				}
				lo := g * engine.Lanes
				hi := end * engine.Lanes
				if hi > uint64(p.WorkItems) {
					hi = uint64(p.WorkItems)
				}
				s.eng.RunRange(lo, hi, p, buf)
				prog.Add(end - g)
			}
		}()
	}
	wg.Wait()
	prog.Finish()
}

// workItems is alphabetSize^ParLen: one task per distinct literal prefix.
// Validate already proved it fits, but the check stays cheap and local.
func (s *Searcher) workItems() (uint32, error) {
	n := uint64(1)
	for i := 0; i < s.cfg.ParLen; i++ {
		n *= uint64(s.alpha.Size())
		if n > uint64(^uint32(0)) {
			return 0, core.ConfigError{Msg: "task count does not fit a 32-bit index"}
		}
	}
	return uint32(n), nil
}

// autoCapacity sizes the output buffer from the expected collision count:
// the searched space divided by the 2^32 hash range, times a 1.5 safety
// factor, plus slack for small spaces.
func (s *Searcher) autoCapacity() uint32 {
	space := math.Pow(float64(s.alpha.Size()), float64(s.cfg.ParLen+s.cfg.SeqLen))
	expected := space / math.Exp2(32)
	c := uint64(1.5*expected) + 100
	if c > maxAutoRecords {
		c = maxAutoRecords
	}
	return uint32(c)
}

// decodeRecord splits a raw record into its literal and sequential parts,
// trimming the sequential part at the first NUL terminator. The bytes are
// copied out of the buffer.
func decodeRecord(rec []byte, parLen int) core.Match {
	seq := rec[parLen:]
	if i := bytes.IndexByte(seq, 0); i >= 0 {
		seq = seq[:i]
	}
	return core.Match{
		Literal:    append([]byte(nil), rec[:parLen]...),
		Sequential: append([]byte(nil), seq...),
	}
}
