// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Each runs fn over the provided work items with at most workerCount
// concurrent invocations, passing each item's index alongside the item.
//
// Unlike pools that stop on the first failure, Each never cancels on behalf
// of fn: one item's outcome must not affect the rest, so fn is expected to
// capture its own failures. Each visits every item unless the context is
// canceled first, in which case unstarted items are skipped and the context
// error is returned after in-flight invocations finish.
func Each[T any](ctx context.Context, workerCount int, items []T, fn func(ctx context.Context, index int, item T)) error {
	if workerCount < 1 {
		workerCount = 1
	}

	type task struct {
		index int
		item  T
	}

	tasks := make(chan task)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case tk, ok := <-tasks:
					if !ok {
						return
					}
					fn(ctx, tk.index, tk.item)
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- task{index: i, item: item}:
			}
		}
	}()

	wg.Wait()

	return ctx.Err()
}
