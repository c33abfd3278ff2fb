package option

import "github.com/ib-77/mona/pkg/mona"

// Match evaluates onNone or onSome, never both. An absent result panics
// with mona.ErrResultAbsent.
func Match[T, R any](o Option[T], onNone func() R, onSome func(T) R) R {
	if o.some {
		return mona.RequireResult(onSome(o.value), "option.Match")
	}
	return mona.RequireResult(onNone(), "option.Match")
}

// MatchOr is Match with a constant result for None.
func MatchOr[T, R any](o Option[T], noneValue R, onSome func(T) R) R {
	if o.some {
		return mona.RequireResult(onSome(o.value), "option.MatchOr")
	}
	return mona.RequireResult(noneValue, "option.MatchOr")
}

// Do runs onNone or onSome for their side effects. Either may be nil.
func (o Option[T]) Do(onNone func(), onSome func(T)) mona.Unit {
	if o.some {
		if onSome != nil {
			onSome(o.value)
		}
	} else if onNone != nil {
		onNone()
	}
	return mona.U
}

// Map applies f to the value of a Some. A result that is absent collapses
// to None instead of producing a Some holding nothing.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return From(f(o.value))
}

// Bind applies f to the value of a Some and returns its Option directly.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// Fold combines seed with the value of a Some. None returns seed untouched.
func Fold[T, S any](o Option[T], seed S, f func(S, T) S) S {
	if !o.some {
		return seed
	}
	return f(seed, o.value)
}

// Filter keeps a Some only if pred holds for its value.
// pred is never called on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Recover replaces None with Some(alt). A Some is returned unchanged.
// An absent alt panics with mona.ErrValueAbsent.
func (o Option[T]) Recover(alt T) Option[T] {
	if o.some {
		return o
	}
	return Option[T]{value: mona.RequirePresent(alt, "option.Recover"), some: true}
}

// RecoverWith replaces None with Some(alt()). alt is not called for Some.
func (o Option[T]) RecoverWith(alt func() T) Option[T] {
	if o.some {
		return o
	}
	return Option[T]{value: mona.RequireResult(alt(), "option.RecoverWith"), some: true}
}

// Tap runs action on the value of a Some and returns o unchanged.
func (o Option[T]) Tap(action func(T)) Option[T] {
	if o.some {
		action(o.value)
	}
	return o
}

// TapNone runs action when o is None and returns o unchanged.
func (o Option[T]) TapNone(action func()) Option[T] {
	if !o.some {
		action()
	}
	return o
}

// Or returns o if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse is the lazy Or: other is only produced when o is None.
func (o Option[T]) OrElse(other func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other()
}

// And returns other if o is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other
}

// AndAlso is the lazy And: other is only produced when o is Some.
func (o Option[T]) AndAlso(other func() Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other()
}
