// Command collider searches for strings over a restricted alphabet whose
// rolling hash matches a target value, given a known prefix and suffix.
//
// The --target value is the hash as produced by the widespread
// h' = h*37 + c fold, which is how targets are harvested in the wild.
// Internally the engine works with the equivalent h' = (h+c)*37 form;
// the two differ by exactly one factor of the multiplier, and parseTarget
// converts between them.
//
// Example, reproducing the reference search:
//
//	collider --prefix /other/ --suffix .dcx --target d7255946
//
// With --fan-out the base search runs alongside one extra search per
// alphabet character appended to the prefix, covering strings one
// character longer than a single launch can reach. The fanned searches
// overlap the base one, so matches are deduplicated before printing.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"collidergo/internal/core"
	"collidergo/pkg/collider"
)

var (
	alphabet  = flag.String("alphabet", ".0123456789_abcdefghijklmnopqrstuvwxyz", "characters allowed in generated strings")
	prefix    = flag.String("prefix", "", "known fixed prefix")
	suffix    = flag.String("suffix", "", "known fixed suffix")
	target    = flag.String("target", "", "target hash as 32-bit hex, h*37+c fold (required)")
	parLen    = flag.Int("par-len", 4, "literal prefix characters per task")
	seqLen    = flag.Int("seq-len", 5, "sequential characters, of which the last is solved")
	threads   = flag.Int("threads", 0, "worker goroutines per search (0 = number of CPUs)")
	bufferCap = flag.Uint32("buffer", 0, "output buffer capacity in records (0 = auto)")
	fanOut    = flag.Bool("fan-out", false, "also search with the prefix extended by each alphabet character")
	verbose   = flag.BoolP("verbose", "v", false, "log progress")
)

func main() {
	flag.Parse()
	if *target == "" {
		fmt.Fprintln(os.Stderr, "collider: --target is required")
		flag.Usage()
		os.Exit(2)
	}
	t, err := parseTarget(*target)
	if err != nil {
		log.Fatalf("collider: bad --target %q: %v", *target, err)
	}

	cfg := core.DefaultSearchConfig()
	cfg.ParLen = *parLen
	cfg.SeqLen = *seqLen
	cfg.BufferCap = *bufferCap
	cfg.Verbose = *verbose
	if *threads > 0 {
		cfg.NumThreads = *threads
	}

	prefixes := []string{*prefix}
	if *fanOut {
		for _, c := range []byte(*alphabet) {
			prefixes = append(prefixes, *prefix+string(c))
		}
		// Split the workers across the concurrent searches.
		if per := cfg.NumThreads / len(prefixes); per > 0 {
			cfg.NumThreads = per
		} else {
			cfg.NumThreads = 1
		}
	}

	s, err := collider.New([]byte(*alphabet), cfg)
	if err != nil {
		log.Fatalf("collider: %v", err)
	}

	start := time.Now()
	var (
		mu        sync.Mutex
		seen      = make(map[uint64]struct{})
		found     []string
		total     uint64
		truncated bool
	)
	var g errgroup.Group
	for _, p := range prefixes {
		p := p
		g.Go(func() error {
			res, err := s.Find([]byte(p), []byte(*suffix), t)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			total += uint64(res.Total)
			truncated = truncated || res.Truncated
			for _, m := range res.Matches {
				full := p + m.String() + *suffix
				// Fanned launches rediscover matches the base launch
				// already found; fingerprint and keep one copy.
				fp := xxhash.Sum64String(full)
				if _, dup := seen[fp]; dup {
					continue
				}
				seen[fp] = struct{}{}
				found = append(found, full)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("collider: %v", err)
	}

	sort.Strings(found)
	for _, m := range found {
		fmt.Println(m)
	}
	fmt.Fprintf(os.Stderr, "\nfound %d matches (%d distinct) in %v\n", total, len(found), time.Since(start))
	if truncated {
		fmt.Fprintln(os.Stderr, "warning: output buffer overflowed; rerun with a larger --buffer")
	}
}

// parseTarget parses a 32-bit hex hash given in the h' = h*37 + c fold and
// converts it to the engine's h' = (h+c)*37 convention. For any string the
// two folds differ by exactly one trailing multiplication, so the
// conversion is a single multiply.
func parseTarget(s string) (core.Hash, error) {
	t, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, err
	}
	return core.Hash(t) * core.Multiplier, nil
}
