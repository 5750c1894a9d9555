// Package parallel provides the fan-out helper record-and-assign uses to
// fill a StackEntry's n×n or n³ derivative grid
// (internal/tape.GradientStructure.Assign's full mixed-grid levels) once
// the grid's cell count crosses a size where the per-cell EvalD2/EvalD3
// tree walk dominates goroutine overhead.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForGrid2 calls f(i,j) for every cell of an n×n row-major grid —
// the shape of a StackEntry's SecondMixed buffer. It flattens the grid
// to a single range so one For call load-balances the whole i,j space,
// rather than parallelizing only the outer loop and leaving small-n
// inner loops to a single goroutine each.
func ForGrid2(n int, f func(i, j int), cfg Config) {
	For(n*n, func(k int) {
		f(k/n, k%n)
	}, cfg)
}

// ForGrid3 is ForGrid2 for an n×n×n grid — the shape of a StackEntry's
// ThirdMixed buffer.
func ForGrid3(n int, f func(i, j, k int), cfg Config) {
	For(n*n*n, func(flat int) {
		i := flat / (n * n)
		rem := flat % (n * n)
		f(i, rem/n, rem%n)
	}, cfg)
}
