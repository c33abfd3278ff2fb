package try

import (
	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/either"
	"github.com/ib-77/mona/pkg/mona/option"
)

// Match reduces an attempted Try with onErr or onOk. A NotAttempted Try
// panics with mona.ErrUnwrapEmpty; use MatchAll to handle it.
func Match[E, O, R any](t Try[E, O], onErr func(E) R, onOk func(O) R) R {
	e, ok := t.inner.Get()
	if !ok {
		mona.Fail(mona.ErrUnwrapEmpty, "try.Match")
	}
	return either.Match(e, onErr, onOk)
}

// MatchAll reduces t with exactly one of the three branches.
func MatchAll[E, O, R any](t Try[E, O], onNotAttempted func() R, onErr func(E) R, onOk func(O) R) R {
	return option.Match(t.inner, onNotAttempted, func(e either.Either[E, O]) R {
		return either.Match(e, onErr, onOk)
	})
}

// Map transforms the success value. NotAttempted and Err pass through.
func Map[E, O, O2 any](t Try[E, O], f func(O) O2) Try[E, O2] {
	return Try[E, O2]{inner: option.Map(t.inner, func(e either.Either[E, O]) either.Either[E, O2] {
		return either.MapRight(e, f)
	})}
}

// MapErr transforms the error value. NotAttempted and Ok pass through.
func MapErr[E, O, E2 any](t Try[E, O], f func(E) E2) Try[E2, O] {
	return Try[E2, O]{inner: option.Map(t.inner, func(e either.Either[E, O]) either.Either[E2, O] {
		return either.MapLeft(e, f)
	})}
}

// Bind chains f on a success value.
func Bind[E, O, O2 any](t Try[E, O], f func(O) Try[E, O2]) Try[E, O2] {
	return Try[E, O2]{inner: option.Bind(t.inner, func(e either.Either[E, O]) option.Option[either.Either[E, O2]] {
		if e.IsLeft() {
			return option.Some(either.FromLeft[E, O2](e.Left()))
		}
		return f(e.Right()).inner
	})}
}

// Fold combines seed with the success value. Anything else returns seed.
func Fold[E, O, S any](t Try[E, O], seed S, f func(S, O) S) S {
	return option.Fold(t.inner, seed, func(acc S, e either.Either[E, O]) S {
		return either.FoldRight(e, acc, f)
	})
}

// Recover turns Err(e) into Ok(f(e)). NotAttempted and Ok are unchanged.
func (t Try[E, O]) Recover(f func(E) O) Try[E, O] {
	return Try[E, O]{inner: option.Map(t.inner, func(e either.Either[E, O]) either.Either[E, O] {
		return e.Recover(f)
	})}
}

// OrElse returns t when it was attempted and the Try produced by attempt
// otherwise. attempt is not called for an attempted t.
func (t Try[E, O]) OrElse(attempt func() Try[E, O]) Try[E, O] {
	if t.inner.IsSome() {
		return t
	}
	return attempt()
}

// Tap runs action on the success value and returns t unchanged.
func (t Try[E, O]) Tap(action func(O)) Try[E, O] {
	t.inner.Tap(func(e either.Either[E, O]) { e.TapRight(action) })
	return t
}

// TapErr runs action on the error value and returns t unchanged.
func (t Try[E, O]) TapErr(action func(E)) Try[E, O] {
	t.inner.Tap(func(e either.Either[E, O]) { e.TapLeft(action) })
	return t
}

// ToEither returns the Either of an attempted Try, or Left(onNotAttempted())
// when it has not been attempted.
func (t Try[E, O]) ToEither(onNotAttempted func() E) either.Either[E, O] {
	if e, ok := t.inner.Get(); ok {
		return e
	}
	return either.FromLeft[E, O](mona.RequireResult(onNotAttempted(), "try.ToEither"))
}
