package skills

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrMatcherClosed is returned by Match after Close.
var ErrMatcherClosed = errors.New("skill matcher is closed")

type matchJob struct {
	ctx        context.Context
	candidates []string
	results    chan<- []int
}

// Matcher looks candidate phrases up in a catalog on a fixed pool of worker
// goroutines. The pool is started once and shared by every document of a run.
type Matcher struct {
	catalog *Catalog
	workers int

	jobs      chan matchJob
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewMatcher starts workers goroutines over catalog. workers <= 0 uses one per CPU.
func NewMatcher(catalog *Catalog, workers int) *Matcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	m := &Matcher{
		catalog: catalog,
		workers: workers,
		jobs:    make(chan matchJob),
		closed:  make(chan struct{}),
	}
	m.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go m.worker()
	}
	return m
}

func (m *Matcher) worker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.closed:
			return
		case job := <-m.jobs:
			job.results <- m.lookup(job.ctx, job.candidates)
		}
	}
}

// lookup returns the catalog positions hit by candidates. It reads only the catalog.
func (m *Matcher) lookup(ctx context.Context, candidates []string) []int {
	var hits []int
	for i, c := range candidates {
		if i%256 == 0 && ctx.Err() != nil {
			return hits
		}
		if idx, ok := m.catalog.lookupIndex(c); ok {
			hits = append(hits, idx)
		}
	}
	return hits
}

// Workers returns the pool size.
func (m *Matcher) Workers() int {
	return m.workers
}

// Match returns every catalog entry equal, ignoring case, to at least one candidate.
// The result holds each skill once, in catalog order.
func (m *Matcher) Match(ctx context.Context, candidates []string) ([]string, error) {
	select {
	case <-m.closed:
		return nil, ErrMatcherClosed
	default:
	}
	if len(candidates) == 0 {
		return []string{}, nil
	}

	shards := shard(candidates, m.workers)
	results := make(chan []int, len(shards))

	sent := 0
	var sendErr error
dispatch:
	for _, s := range shards {
		select {
		case m.jobs <- matchJob{ctx: ctx, candidates: s, results: results}:
			sent++
		case <-ctx.Done():
			sendErr = ctx.Err()
			break dispatch
		case <-m.closed:
			sendErr = ErrMatcherClosed
			break dispatch
		}
	}

	found := make([]bool, m.catalog.Len())
	for i := 0; i < sent; i++ {
		for _, idx := range <-results {
			found[idx] = true
		}
	}
	if sendErr != nil {
		return nil, sendErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]string, 0)
	for idx, ok := range found {
		if ok {
			matched = append(matched, m.catalog.entries[idx])
		}
	}
	return matched, nil
}

// Close stops the workers and waits for them to exit. It is safe to call more than once.
func (m *Matcher) Close() {
	m.closeOnce.Do(func() {
		close(m.closed)
	})
	m.wg.Wait()
}

// shard splits items into at most n contiguous, roughly equal parts.
func shard(items []string, n int) [][]string {
	if n > len(items) {
		n = len(items)
	}
	size := (len(items) + n - 1) / n
	out := make([][]string, 0, n)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
