package utils

import (
	"context"
	"sync"
)

type CompletedTask[T any] struct {
	Result T
	Error  error
}

// RunInPool consumes tasks from queue with up to maxWorkers goroutines and
// writes every outcome to completed, closing it once the queue is drained or
// the context is cancelled. The caller should close queue after filling it.
func RunInPool[In any, Out any](ctx context.Context, worker func(In) (Out, error), queue chan In, completed chan CompletedTask[Out], maxWorkers int) {
	workers := min(len(queue), maxWorkers)
	if workers < 1 {
		workers = 1
	}

	go func() {
		wg := sync.WaitGroup{}
		wg.Add(workers)

		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()

				for {
					select {
					case <-ctx.Done():
						return
					case next, ok := <-queue:
						if !ok {
							return
						}
						res, err := worker(next)
						completed <- CompletedTask[Out]{Result: res, Error: err}
					}
				}
			}()
		}

		wg.Wait()
		close(completed)
	}()
}
