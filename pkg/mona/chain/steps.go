package chain

import (
	"context"

	"github.com/ib-77/mona/pkg/mona/try"
)

// Then chains a function that returns a Try of another type.
func Then[T, U any](c Chain[T], onOk func(ctx context.Context, t T) try.Try[error, U]) Chain[U] {
	v, c, ok := c.value()
	if !ok {
		return skip[T, U](c)
	}
	return Chain[U]{ctx: c.ctx, res: onOk(c.ctx, v)}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c Chain[T], f func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, t T) try.Try[error, U] {
		u, err := f(ctx, t)
		return try.FromResult(u, err)
	})
}

// Map chains a pure transformation.
func Map[T, U any](c Chain[T], onOk func(ctx context.Context, t T) U) Chain[U] {
	return Then(c, func(ctx context.Context, t T) try.Try[error, U] {
		return try.FromOk[error](onOk(ctx, t))
	})
}

// Finally collapses the chain into a value of another type.
func Finally[T, U any](c Chain[T], onOk func(context.Context, T) U,
	onErr func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {

	if t, ok := c.res.GetOk(); ok {
		return onOk(c.ctx, t)
	}
	err, ok := c.res.GetErr()
	switch {
	case !ok:
		return onCancel(c.ctx, ErrNotAttempted)
	case isCancel(err):
		return onCancel(c.ctx, err)
	default:
		return onErr(c.ctx, err)
	}
}

func skip[T, U any](c Chain[T]) Chain[U] {
	if err, ok := c.res.GetErr(); ok {
		return Chain[U]{ctx: c.ctx, res: try.FromErr[error, U](err)}
	}
	return Chain[U]{ctx: c.ctx, res: try.NotAttempted[error, U]()}
}
