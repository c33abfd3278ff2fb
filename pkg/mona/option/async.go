package option

import (
	"context"

	"github.com/ib-77/mona/pkg/mona"
)

// The Async forms take transformations that may block on external work.
// The state decision and the absent-result rules are the same as in the
// synchronous forms. ctx is handed to the transformation as is; when the
// transformation fails (for instance because ctx was cancelled) the result
// is left unresolved: the zero value together with that error.

// MapAsync is Map with a blocking transformation.
func MapAsync[T, U any](ctx context.Context, o Option[T],
	f func(ctx context.Context, v T) (U, error)) (Option[U], error) {

	if !o.some {
		return None[U](), nil
	}

	u, err := f(ctx, o.value)
	if err != nil {
		return None[U](), err
	}
	return From(u), nil
}

// BindAsync is Bind with a blocking transformation.
func BindAsync[T, U any](ctx context.Context, o Option[T],
	f func(ctx context.Context, v T) (Option[U], error)) (Option[U], error) {

	if !o.some {
		return None[U](), nil
	}

	u, err := f(ctx, o.value)
	if err != nil {
		return None[U](), err
	}
	return u, nil
}

// MatchAsync is Match with blocking branches.
func MatchAsync[T, R any](ctx context.Context, o Option[T],
	onNone func(ctx context.Context) (R, error),
	onSome func(ctx context.Context, v T) (R, error)) (R, error) {

	var (
		r   R
		err error
	)
	if o.some {
		r, err = onSome(ctx, o.value)
	} else {
		r, err = onNone(ctx)
	}
	if err != nil {
		var zero R
		return zero, err
	}
	return mona.RequireResult(r, "option.MatchAsync"), nil
}

// FoldAsync is Fold with a blocking combiner.
func FoldAsync[T, S any](ctx context.Context, o Option[T], seed S,
	f func(ctx context.Context, acc S, v T) (S, error)) (S, error) {

	if !o.some {
		return seed, nil
	}
	return f(ctx, seed, o.value)
}

// FilterAsync is Filter with a blocking predicate.
func (o Option[T]) FilterAsync(ctx context.Context,
	pred func(ctx context.Context, v T) (bool, error)) (Option[T], error) {

	if !o.some {
		return o, nil
	}

	keep, err := pred(ctx, o.value)
	if err != nil {
		return None[T](), err
	}
	if !keep {
		return None[T](), nil
	}
	return o, nil
}

// RecoverAsync is RecoverWith with a blocking producer.
func (o Option[T]) RecoverAsync(ctx context.Context,
	alt func(ctx context.Context) (T, error)) (Option[T], error) {

	if o.some {
		return o, nil
	}

	v, err := alt(ctx)
	if err != nil {
		return None[T](), err
	}
	return Option[T]{value: mona.RequireResult(v, "option.RecoverAsync"), some: true}, nil
}

// TapAsync is Tap with a blocking action.
func (o Option[T]) TapAsync(ctx context.Context,
	action func(ctx context.Context, v T) error) (Option[T], error) {

	if !o.some {
		return o, nil
	}
	if err := action(ctx, o.value); err != nil {
		return None[T](), err
	}
	return o, nil
}
