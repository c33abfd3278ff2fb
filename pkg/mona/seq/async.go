package seq

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/mona/pkg/mona/option"
)

var errNone = errors.New("seq: none")

// TraverseAsync is Traverse with a blocking transformation run over xs with
// at most Workers(ctx, GOMAXPROCS) concurrent calls. The first None cancels
// the remaining calls and yields None; the first error does the same and is
// returned with an unresolved (None) result.
func TraverseAsync[T, U any](ctx context.Context, xs []T,
	f func(ctx context.Context, x T) (option.Option[U], error)) (option.Option[[]U], error) {

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(ctx, runtime.GOMAXPROCS(0)))

	out := make([]U, len(xs))
	for i, x := range xs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			o, err := f(gctx, x)
			if err != nil {
				return err
			}
			u, ok := o.Get()
			if !ok {
				return errNone
			}
			out[i] = u
			return nil
		})
	}

	switch err := g.Wait(); {
	case errors.Is(err, errNone):
		return option.None[[]U](), nil
	case err != nil:
		return option.None[[]U](), err
	}
	return option.Some(out), nil
}
