// core/workload/workload.go
package workload

import "fmt"

// Chunk is a half-open index range [Begin, End) assigned to one worker.
type Chunk struct {
	Begin int
	End   int
}

// Scale replicates items until the result holds exactly n entries, so that
// result[i] == items[i%len(items)]. Growth is by whole-slice doubling rather
// than element-wise appends. Returns nil for n <= 0 and an error when items
// is empty but n > 0.
func Scale(items []string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("workload: cannot scale empty query set to %d", n)
	}
	out := make([]string, len(items), max(len(items), n))
	copy(out, items)
	for len(out) < n {
		out = append(out, out...)
	}
	return out[:n], nil
}

// Partition splits [0, n) into balanced chunks. The block count is
// max(min(workers, n), ceil(n/minBlock)), clamped to n: small inputs still
// yield one block per available worker, large inputs keep blocks at least
// minBlock long to amortize per-task overhead. Returns nil for n <= 0.
func Partition(n, workers, minBlock int) []Chunk {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if minBlock < 1 {
		minBlock = 1
	}

	blocks := workers
	if n < blocks {
		blocks = n
	}
	if byMin := (n + minBlock - 1) / minBlock; byMin > blocks {
		blocks = byMin
	}
	if blocks > n {
		blocks = n
	}

	size := (n + blocks - 1) / blocks
	out := make([]Chunk, 0, blocks)
	for b := 0; b < n; b += size {
		e := b + size
		if e > n {
			e = n
		}
		out = append(out, Chunk{Begin: b, End: e})
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
