package seq

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/option"
	"github.com/ib-77/mona/pkg/mona/try"
)

// ToChan feeds values into an unbuffered channel that is closed after the
// last value or when ctx is done. Values left unsent are reported to
// Logger(ctx).
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				dropped(ctx, "seq.ToChan", len(values)-i)
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				dropped(ctx, "seq.ToChan", len(values)-i)
				return
			}
		}
	}()

	return in
}

// FromChan drains ch until it is closed or ctx is done and returns what it
// received, in order.
func FromChan[T any](ctx context.Context, ch <-chan T) []T {
	var out []T
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-ctx.Done():
			return out
		}
	}
}

// FirstFromChan waits for one value from ch. A closed channel or a done
// ctx gives None.
func FirstFromChan[T any](ctx context.Context, ch <-chan T) option.Option[T] {
	select {
	case v, ok := <-ch:
		if !ok {
			return option.None[T]()
		}
		return option.From(v)
	case <-ctx.Done():
		return option.None[T]()
	}
}

// MapStream applies f to every item of in on `lines` concurrent workers and
// emits each outcome as a Try: Err for a returned error, Ok otherwise.
// Programmer defects raised inside f (a *mona.Error panic) become Err as
// well so that one item cannot take a worker down. A non-positive lines
// falls back to Workers(ctx, 1). Output order is not preserved. The output
// channel is closed once in is drained or ctx is done.
func MapStream[T, U any](ctx context.Context, in <-chan T,
	f func(ctx context.Context, v T) (U, error), lines int) <-chan try.Try[error, U] {

	if lines <= 0 {
		lines = Workers(ctx, 1)
	}

	out := make(chan try.Try[error, U])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go locomotive(ctx, in, out, f, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func locomotive[T, U any](ctx context.Context, in <-chan T, out chan<- try.Try[error, U],
	f func(ctx context.Context, v T) (U, error), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-in:
			if !ok {
				return
			}

			r := attempt(ctx, v, f)
			select {
			case <-ctx.Done():
				Logger(ctx).Debug("stream item processed after cancellation",
					zap.String("op", "seq.MapStream"),
					zap.Stringer("result", r),
					zap.Error(ctx.Err()))
				return
			case out <- r:
			}
		}
	}
}

func attempt[T, U any](ctx context.Context, v T,
	f func(ctx context.Context, v T) (U, error)) (r try.Try[error, U]) {

	var err error
	defer func() {
		if err != nil {
			r = try.FromErr[error, U](err)
		}
	}()
	defer mona.Recover(&err)

	u, ferr := f(ctx, v)
	return try.FromResult(u, ferr)
}

func dropped(ctx context.Context, op string, remaining int) {
	Logger(ctx).Debug("stream input dropped",
		zap.String("op", op),
		zap.Int("remaining", remaining),
		zap.Error(ctx.Err()))
}
