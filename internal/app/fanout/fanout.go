// Package fanout runs a function across a slice of items with bounded
// concurrency and settles every branch: a failing or panicking branch yields
// an error result and never stops its siblings. Results keep input order.
//
//	results := fanout.Run(ctx, 16, shares, func(ctx context.Context, s *Share) (struct{}, error) {
//	    return struct{}{}, decrypt(ctx, s)
//	})
package fanout

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is the error recorded for a branch whose fn panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: branch panicked: %v", e.Value)
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines and blocks until every branch has settled. Results are returned
// in the same order as the input items.
//
// A branch that has not started when ctx ends records ctx.Err() without
// calling fn. Branches already running see the canceled ctx and finish on
// their own. A panic in fn is recovered into a *PanicError result.
//
// maxWorkers below 1 is treated as 1. An empty items slice returns an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[idx] = Result[R]{Err: err}
				return
			}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			results[idx] = call(ctx, it, fn)
		}(i, item)
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, it T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v, Stack: debug.Stack()}}
		}
	}()

	val, err := fn(ctx, it)
	return Result[R]{Value: val, Err: err}
}
