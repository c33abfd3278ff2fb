package either

import (
	"context"

	"github.com/ib-77/mona/pkg/mona"
)

// The Async forms mirror the synchronous ones around transformations that
// may block. The side is decided before the transformation runs; a
// transformation error leaves the result unresolved (zero value plus error).

// MatchAsync is Match with blocking branches.
func MatchAsync[L, R, T any](ctx context.Context, e Either[L, R],
	onLeft func(ctx context.Context, l L) (T, error),
	onRight func(ctx context.Context, r R) (T, error)) (T, error) {

	e.trap("either.MatchAsync")

	var (
		t   T
		err error
	)
	if e.side == left {
		t, err = onLeft(ctx, e.left)
	} else {
		t, err = onRight(ctx, e.right)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return mona.RequireResult(t, "either.MatchAsync"), nil
}

// MapLeftAsync is MapLeft with a blocking transformation.
func MapLeftAsync[L, R, L2 any](ctx context.Context, e Either[L, R],
	f func(ctx context.Context, l L) (L2, error)) (Either[L2, R], error) {

	e.trap("either.MapLeftAsync")
	if e.side == right {
		return Either[L2, R]{right: e.right, side: right}, nil
	}

	l2, err := f(ctx, e.left)
	if err != nil {
		return Either[L2, R]{}, err
	}
	return Either[L2, R]{left: mona.RequireResult(l2, "either.MapLeftAsync"), side: left}, nil
}

// MapRightAsync is MapRight with a blocking transformation.
func MapRightAsync[L, R, R2 any](ctx context.Context, e Either[L, R],
	f func(ctx context.Context, r R) (R2, error)) (Either[L, R2], error) {

	e.trap("either.MapRightAsync")
	if e.side == left {
		return Either[L, R2]{left: e.left, side: left}, nil
	}

	r2, err := f(ctx, e.right)
	if err != nil {
		return Either[L, R2]{}, err
	}
	return Either[L, R2]{right: mona.RequireResult(r2, "either.MapRightAsync"), side: right}, nil
}

// BiMapAsync is BiMap with blocking transformations.
func BiMapAsync[L, R, L2, R2 any](ctx context.Context, e Either[L, R],
	onLeft func(ctx context.Context, l L) (L2, error),
	onRight func(ctx context.Context, r R) (R2, error)) (Either[L2, R2], error) {

	e.trap("either.BiMapAsync")
	if e.side == left {
		l2, err := onLeft(ctx, e.left)
		if err != nil {
			return Either[L2, R2]{}, err
		}
		return Either[L2, R2]{left: mona.RequireResult(l2, "either.BiMapAsync"), side: left}, nil
	}

	r2, err := onRight(ctx, e.right)
	if err != nil {
		return Either[L2, R2]{}, err
	}
	return Either[L2, R2]{right: mona.RequireResult(r2, "either.BiMapAsync"), side: right}, nil
}

// BindRightAsync is BindRight with a blocking binder.
func BindRightAsync[L, R, R2 any](ctx context.Context, e Either[L, R],
	f func(ctx context.Context, r R) (Either[L, R2], error)) (Either[L, R2], error) {

	e.trap("either.BindRightAsync")
	if e.side == left {
		return Either[L, R2]{left: e.left, side: left}, nil
	}

	next, err := f(ctx, e.right)
	if err != nil {
		return Either[L, R2]{}, err
	}
	return requireBound(next, "either.BindRightAsync"), nil
}

// BindLeftAsync is BindLeft with a blocking binder.
func BindLeftAsync[L, R, L2 any](ctx context.Context, e Either[L, R],
	f func(ctx context.Context, l L) (Either[L2, R], error)) (Either[L2, R], error) {

	e.trap("either.BindLeftAsync")
	if e.side == right {
		return Either[L2, R]{right: e.right, side: right}, nil
	}

	next, err := f(ctx, e.left)
	if err != nil {
		return Either[L2, R]{}, err
	}
	return requireBound(next, "either.BindLeftAsync"), nil
}

// FoldLeftAsync is FoldLeft with a blocking combiner.
func FoldLeftAsync[L, R, S any](ctx context.Context, e Either[L, R], seed S,
	f func(ctx context.Context, acc S, l L) (S, error)) (S, error) {

	e.trap("either.FoldLeftAsync")
	if e.side != left {
		return seed, nil
	}
	return f(ctx, seed, e.left)
}

// FoldRightAsync is FoldRight with a blocking combiner.
func FoldRightAsync[L, R, S any](ctx context.Context, e Either[L, R], seed S,
	f func(ctx context.Context, acc S, r R) (S, error)) (S, error) {

	e.trap("either.FoldRightAsync")
	if e.side != right {
		return seed, nil
	}
	return f(ctx, seed, e.right)
}
