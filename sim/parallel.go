package sim

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum row count to use parallel processing.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// parallelRows splits [0, h) into contiguous chunks and runs fn on each,
// in parallel when the grid is large enough. fn must only write rows inside
// its own chunk; the split is deterministic so results never depend on the
// worker count.
func parallelRows(h int, fn func(y0, y1 int)) {
	if h < parallelThreshold {
		fn(0, h)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}
	chunk := (h + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += chunk {
		y1 := y0 + chunk
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
