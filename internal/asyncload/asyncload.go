// Package asyncload offers a thin asynchronous wrapper around the
// synchronous spz.Load primitive, for callers that want to kick off a load
// without blocking the calling goroutine.
package asyncload

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is delivered once on the channel returned by Load: either a
// successfully loaded value, or the error that load produced.
type Result[T any] struct {
	Value T
	Err   error
}

// Load launches load on its own goroutine, managed by an errgroup.Group,
// and delivers exactly one Result on the returned channel (buffered,
// capacity 1, so Load never blocks waiting for a receiver). Cancelling ctx
// does not abort an in-flight load; it only stops Load from starting if
// ctx is already done.
func Load[T any](ctx context.Context, load func() (T, error)) (<-chan Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(chan Result[T], 1)
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		v, err := load()
		out <- Result[T]{Value: v, Err: err}
		return err
	})

	return out, nil
}
