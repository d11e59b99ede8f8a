package conc

import (
	"context"
	"sync"
)

// Item 68: prefer a bounded pool to a goroutine per task.
//
// Goroutines are cheap but the resources behind them are not: a spike of
// ten thousand tasks means ten thousand concurrent connections, open
// files, or allocations. A fixed worker pool turns load spikes into queue
// depth, and the context threads cancellation through every worker.

// Task is a unit of work.
type Task func(ctx context.Context) error

// runAllUnbounded spawns one goroutine per task with no ceiling - fine for
// ten tasks, an incident for ten thousand.
func runAllUnbounded(ctx context.Context, tasks []Task) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(ctx); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// RunAll executes tasks on at most workers goroutines. The first failure
// cancels the context; queued tasks observe the cancellation and are
// skipped.
func RunAll(ctx context.Context, workers int, tasks []Task) error {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan Task)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				if ctx.Err() != nil {
					continue
				}
				if err := task(ctx); err != nil {
					fail(err)
				}
			}
		}()
	}

	for _, task := range tasks {
		queue <- task
	}
	close(queue)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
