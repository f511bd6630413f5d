// Package parallel runs independent, read-only passes over a shared
// expression tree on several goroutines.
//
// Forward-mode gradients need one pass per variable. Passes never write
// node state, so they can proceed side by side; how long each one takes
// depends on where its variable sits in the tree, so workers claim passes
// one at a time rather than in fixed blocks.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls how passes are spread over workers.
type Config struct {
	Enabled    bool // Run passes concurrently at all.
	NumWorkers int  // Upper bound on worker goroutines.
	MinItems   int  // Fewer passes than this run on the calling goroutine.
}

// DefaultConfig uses one worker per CPU and keeps small gradients, where
// goroutine start-up would dominate, on the caller.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   8,
	}
}

// For calls f(i) exactly once for every i in [0, n) and returns when all
// calls are done. Calls run in index order on the calling goroutine when
// cfg is disabled, has no workers or n is below MinItems; otherwise their
// order is unspecified and f must be safe for concurrent use.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 0 || n < max(cfg.MinItems, 2) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := min(cfg.NumWorkers, n); w > 0; w-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}
