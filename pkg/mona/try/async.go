package try

import (
	"context"

	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/either"
	"github.com/ib-77/mona/pkg/mona/option"
)

// MapAsync is Map with a blocking transformation. A transformation error
// yields NotAttempted together with that error.
func MapAsync[E, O, O2 any](ctx context.Context, t Try[E, O],
	f func(ctx context.Context, o O) (O2, error)) (Try[E, O2], error) {

	inner, err := option.MapAsync(ctx, t.inner,
		func(ctx context.Context, e either.Either[E, O]) (either.Either[E, O2], error) {
			return either.MapRightAsync(ctx, e, f)
		})
	if err != nil {
		return NotAttempted[E, O2](), err
	}
	return Try[E, O2]{inner: inner}, nil
}

// BindAsync is Bind with a blocking binder.
func BindAsync[E, O, O2 any](ctx context.Context, t Try[E, O],
	f func(ctx context.Context, o O) (Try[E, O2], error)) (Try[E, O2], error) {

	e, ok := t.inner.Get()
	if !ok {
		return NotAttempted[E, O2](), nil
	}
	if l, isErr := e.GetLeft(); isErr {
		return FromErr[E, O2](l), nil
	}

	next, err := f(ctx, e.Right())
	if err != nil {
		return NotAttempted[E, O2](), err
	}
	return next, nil
}

// MatchAsync is Match with blocking branches. A NotAttempted Try panics
// with mona.ErrUnwrapEmpty.
func MatchAsync[E, O, R any](ctx context.Context, t Try[E, O],
	onErr func(ctx context.Context, e E) (R, error),
	onOk func(ctx context.Context, o O) (R, error)) (R, error) {

	e, ok := t.inner.Get()
	if !ok {
		mona.Fail(mona.ErrUnwrapEmpty, "try.MatchAsync")
	}
	return either.MatchAsync(ctx, e, onErr, onOk)
}
