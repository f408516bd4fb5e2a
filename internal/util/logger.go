package util

import (
	"log"
	"sync/atomic"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// Progress tracks completion of a fixed number of events across workers
// and prints coarse percentage updates. Add is lock-free so it can sit on
// the workers' chunk boundary without serializing them.
type Progress struct {
	label   string
	total   uint64
	step    uint64
	enabled bool
	start   time.Time
	done    atomic.Uint64
	next    atomic.Uint64
}

// NewProgress creates a progress tracker for total events. Updates print
// in 5% steps; nothing prints when enable is false.
func NewProgress(total uint64, label string, enable bool) *Progress {
	p := &Progress{
		label:   label,
		total:   total,
		enabled: enable,
		start:   time.Now(),
	}
	p.step = total / 20
	if p.step == 0 {
		p.step = 1
	}
	p.next.Store(p.step)
	return p
}

// Add records n completed events, printing when a step boundary passes.
func (p *Progress) Add(n uint64) {
	d := p.done.Add(n)
	if !p.enabled || p.total == 0 {
		return
	}
	for {
		next := p.next.Load()
		if d < next {
			return
		}
		if p.next.CompareAndSwap(next, next+p.step) {
			log.Printf("%s: %d%% (%d/%d)", p.label, 100*d/p.total, d, p.total)
			return
		}
	}
}

// Done returns the number of events recorded so far.
func (p *Progress) Done() uint64 {
	return p.done.Load()
}

// Finish prints the total elapsed time.
func (p *Progress) Finish() {
	if p.enabled {
		log.Printf("%s: done in %v", p.label, time.Since(p.start))
	}
}
