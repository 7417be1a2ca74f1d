package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// runAll runs fns concurrently. The first failure cancels the context the
// others see and is the error returned.
func runAll(ctx context.Context, fns ...func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, fn := range fns {
		g.Go(func() error { return fn(ctx) })
	}

	return g.Wait()
}

// runEach runs fns concurrently to completion and returns their errors,
// indexed like fns. A failure does not cancel the others.
func runEach(ctx context.Context, fns ...func(context.Context) error) []error {
	errs := make([]error, len(fns))

	var wg sync.WaitGroup

	for i, fn := range fns {
		wg.Go(func() { errs[i] = fn(ctx) })
	}

	wg.Wait()

	return errs
}
