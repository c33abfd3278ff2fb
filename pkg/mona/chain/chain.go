package chain

import (
	"context"
	"errors"

	"github.com/ib-77/mona/pkg/mona/try"
)

// ErrNotAttempted is passed to the cancel handler of Finally when the
// chain was started from a NotAttempted Try.
var ErrNotAttempted = errors.New("chain: not attempted")

// Chain wraps a try.Try[error, T] with the context its steps run in.
type Chain[T any] struct {
	ctx context.Context
	res try.Try[error, T]
}

func Start[T any](ctx context.Context, r try.Try[error, T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, try.FromOk[error](v))
}

func (c Chain[T]) Result() try.Try[error, T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Err returns the error of a failed chain and nil otherwise.
func (c Chain[T]) Err() error {
	err, _ := c.res.GetErr()
	return err
}

// value returns the Ok value when the next step may run. A done context
// switches the chain to Err.
func (c Chain[T]) value() (T, Chain[T], bool) {
	v, ok := c.res.GetOk()
	if !ok {
		return v, c, false
	}
	if err := c.ctx.Err(); err != nil {
		return v, Chain[T]{ctx: c.ctx, res: try.FromErr[error, T](err)}, false
	}
	return v, c, true
}

// Then composes functions that already return a Try.
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) try.Try[error, T]) Chain[T] {
	return Then(c, onOk)
}

// ThenTry composes functions that return (T, error), like repository calls.
func (c Chain[T]) ThenTry(f func(ctx context.Context, t T) (T, error)) Chain[T] {
	return ThenTry(c, f)
}

// Map transforms the Ok value.
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	return Map(c, onOk)
}

// Validate switches the chain to Err(errors.New(errMsg)) when valid is
// false.
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	v, c, ok := c.value()
	if !ok {
		return c
	}
	if valid, errMsg := validate(c.ctx, v); !valid {
		return Chain[T]{ctx: c.ctx, res: try.FromErr[error, T](errors.New(errMsg))}
	}
	return c
}

// RepeatUntil runs onOk at least once and keeps running it while the chain
// is Ok and until reports true.
func (c Chain[T]) RepeatUntil(onOk func(ctx context.Context, t T) try.Try[error, T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	for {
		c = c.Then(onOk)

		v, ok := c.res.GetOk()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

// While runs onOk as long as the chain is Ok and while reports true.
func (c Chain[T]) While(onOk func(ctx context.Context, t T) try.Try[error, T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for {
		v, ok := c.res.GetOk()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = c.Then(onOk)
	}
}

// Ensure triggers side effects for Ok and Err without changing the result.
// Either handler may be nil.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if v, ok := c.res.GetOk(); ok && onOk != nil {
		onOk(c.ctx, v)
	}
	if err, ok := c.res.GetErr(); ok && onErr != nil {
		onErr(c.ctx, err)
	}
	return c
}

// Or returns the first Ok chain among c and alternatives. With no Ok chain
// it prefers the first cancelled one, then the first failed one.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	var cancelled, failed *Chain[T]
	for _, ch := range append([]Chain[T]{c}, alternatives...) {
		if ch.res.IsOk() {
			return ch
		}
		err, isErr := ch.res.GetErr()
		switch {
		case !isErr:
		case isCancel(err):
			if cancelled == nil {
				cancelled = &ch
			}
		case failed == nil:
			failed = &ch
		}
	}

	if cancelled != nil {
		return *cancelled
	}
	if failed != nil {
		return *failed
	}
	return c
}

// And returns the first failed chain among c and required, or the last
// chain when none failed.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain. Errors caused by cancellation or deadline go
// to onCancel, other errors to onErr. A chain that was never attempted goes
// to onCancel with ErrNotAttempted.
func (c Chain[T]) Finally(onOk func(context.Context, T) T,
	onErr func(context.Context, error) T,
	onCancel func(context.Context, error) T) T {

	return Finally(c, onOk, onErr, onCancel)
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
