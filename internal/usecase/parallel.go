package usecase

import (
	"context"
	"sync"
)

// runParallel executes the count tasks concurrently and returns their errors
// in task order. Each task writes its result through the dst pointer.
func runParallel(ctx context.Context, tasks []struct {
	dst   *int64
	count func(context.Context) (int64, error)
}) []error {
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, dst *int64, count func(context.Context) (int64, error)) {
			defer wg.Done()
			n, err := count(ctx)
			*dst = n
			errs[index] = err
		}(i, task.dst, task.count)
	}

	wg.Wait()
	return errs
}
