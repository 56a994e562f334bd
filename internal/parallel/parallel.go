// Package parallel provides a static, deterministic fan-out over CPU
// workers for the embarrassingly-parallel per-pixel codec work in
// pkg/pixel, pkg/mipmap, and pkg/present.
//
// The partitioning never depends on runtime scheduling: the same n and
// GOMAXPROCS always produce the same chunk boundaries, so codecs that
// pack several source pixels into one output byte can choose a unit
// size that keeps each chunk's writes disjoint from its neighbors.
package parallel

import (
	"runtime"
	"sync"
)

// SerialThreshold is the unit count below which Run processes serially
// rather than paying goroutine overhead for a handful of units.
const SerialThreshold = 2048

// Run splits [0, n) into at most GOMAXPROCS contiguous, roughly equal
// chunks and calls fn(start, end) for each one, joining all of them
// before returning. n counts whatever unit the caller is partitioning
// over (pixels, rows, or 4x4 blocks); callers that need neighboring
// units to stay in the same chunk should pass a coarser unit (e.g. one
// row, or one block-row) rather than a raw pixel index.
func Run(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 || n < SerialThreshold {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
