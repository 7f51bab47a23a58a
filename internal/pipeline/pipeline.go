// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
	"refscan-core/workload"
)

// Count dispatches one task per chunk to a pool of workers and sums the
// partial hit counts. count is invoked with each chunk's [begin, end) query
// range and must be safe for concurrent use; all state it captures is
// read-only during the search phase, so workers share it without copies.
//
// Partial results are drained as they complete. The first worker error
// cancels the group and is returned; there is no retry and no partial-result
// salvage. The total is order-independent and reproducible for identical
// inputs regardless of worker count.
func Count(
	ctx context.Context,
	workers int,
	chunks []workload.Chunk,
	count func(begin, end int) (int, error),
) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(chunks) {
		workers = len(chunks)
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan workload.Chunk)
	partials := make(chan int, workers)

	g.Go(func() error {
		defer close(jobs)
		for _, c := range chunks {
			select {
			case jobs <- c:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for c := range jobs {
				n, err := count(c.Begin, c.End)
				if err != nil {
					return err
				}
				select {
				case partials <- n:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(partials)
	}()

	total := 0
	for n := range partials {
		total += n
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
