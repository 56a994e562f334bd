package parallel

import (
	"sort"
	"sync"
	"testing"
)

func TestRunCoversEveryUnitExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 17, 2047, 2048, 100000} {
		var mu sync.Mutex
		seen := make([]int, 0, n)

		Run(n, func(start, end int) {
			mu.Lock()
			for i := start; i < end; i++ {
				seen = append(seen, i)
			}
			mu.Unlock()
		})

		if len(seen) != n {
			t.Fatalf("n=%d: got %d units, want %d", n, len(seen), n)
		}
		sort.Ints(seen)
		for i, v := range seen {
			if v != i {
				t.Fatalf("n=%d: unit %d missing or duplicated, got %v at index %d", n, i, v, i)
			}
		}
	}
}

func TestRunChunksAreContiguousAndNonOverlapping(t *testing.T) {
	const n = 500000
	var mu sync.Mutex
	var bounds [][2]int

	Run(n, func(start, end int) {
		mu.Lock()
		bounds = append(bounds, [2]int{start, end})
		mu.Unlock()
	})

	sort.Slice(bounds, func(i, j int) bool { return bounds[i][0] < bounds[j][0] })
	prevEnd := 0
	for _, b := range bounds {
		if b[0] != prevEnd {
			t.Fatalf("gap or overlap: chunk %v does not start at %d", b, prevEnd)
		}
		prevEnd = b[1]
	}
	if prevEnd != n {
		t.Fatalf("chunks cover [0, %d), want [0, %d)", prevEnd, n)
	}
}

func TestRunIsDeterministicAcrossCalls(t *testing.T) {
	const n = 123456
	run := func() []int {
		out := make([]int, n)
		Run(n, func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = i * 2
			}
		})
		return out
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: got %d and %d on repeated runs", i, a[i], b[i])
		}
	}
}
