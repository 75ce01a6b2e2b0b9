package analyze

import (
	"context"
	"sync"
)

// mapOrdered runs fn over in with n worker goroutines and writes each result
// back to the slot matching its input index. The per-record work is pure, so
// only the final slice order matters; the fold that consumes it stays a
// strictly sequential, input-ordered reduction.
func mapOrdered[T, R any](ctx context.Context, n int, in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	if n <= 1 || len(in) < 2 {
		for i, t := range in {
			out[i] = fn(t)
		}
		return out
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = fn(in[i])
			}
		}()
	}

feed:
	for i := range in {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return out
}
