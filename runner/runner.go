// Package runner runs independent jobs concurrently, failing fast on the first error.
package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type (
	// Runnable represents a job that can be run with a context.
	Runnable interface {
		Run(ctx context.Context) error
	}

	// RunnableFunc adapts a function to a Runnable.
	RunnableFunc func(ctx context.Context) error
)

func (f RunnableFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// RunAll runs all the provided runnables concurrently and waits for all of them to finish.
//
// This method is blocking and returns the first error returned by a runnable. The context given to
// the other runnables is cancelled as soon as one fails.
func RunAll(parentCtx context.Context, runnables ...Runnable) error {
	return RunLimited(parentCtx, 0, runnables...)
}

// RunLimited is like RunAll, but runs at most limit runnables at the same time. A limit lower than
// one means no limit.
func RunLimited(parentCtx context.Context, limit int, runnables ...Runnable) error {
	group, ctx := errgroup.WithContext(parentCtx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, runnable := range runnables {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return runnable.Run(ctx)
		})
	}

	return group.Wait()
}
