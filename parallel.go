package aoc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f on every element of in, at most GOMAXPROCS at a time,
// and returns the results in input order. The first error cancels the
// context passed to the remaining calls and is returned.
func Parallel[I, O any](ctx context.Context, in []I, f func(context.Context, I) (O, error)) ([]O, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	out := make([]O, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			o, err := f(ctx, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
