package try

import (
	"fmt"
	"reflect"

	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/either"
	"github.com/ib-77/mona/pkg/mona/option"
)

// Try is NotAttempted (None), Err (Some(Left)) or Ok (Some(Right)).
type Try[E, O any] struct {
	inner option.Option[either.Either[E, O]]
}

// NotAttempted returns the Try of a computation that has not run.
func NotAttempted[E, O any]() Try[E, O] {
	return Try[E, O]{}
}

// FromOk builds a succeeded Try. An absent value panics with
// mona.ErrValueAbsent.
func FromOk[E, O any](o O) Try[E, O] {
	return Try[E, O]{inner: option.Some(either.FromRight[E](o))}
}

// FromErr builds a failed Try. An absent error panics with
// mona.ErrValueAbsent.
func FromErr[E, O any](e E) Try[E, O] {
	return Try[E, O]{inner: option.Some(either.FromLeft[E, O](e))}
}

// FromEither wraps an initialized Either. Bottom panics with
// mona.ErrTrapState.
func FromEither[E, O any](e either.Either[E, O]) Try[E, O] {
	if e.IsBottom() {
		mona.Fail(mona.ErrTrapState, "try.FromEither")
	}
	return Try[E, O]{inner: option.Some(e)}
}

// FromResult adapts the (value, error) convention: a non-nil err gives
// Err(err), otherwise Ok(o). Like FromOk it panics on an absent o, so a
// (nil, nil) return is a defect at the call site.
func FromResult[O any](o O, err error) Try[error, O] {
	if err != nil {
		return FromErr[error, O](err)
	}
	return FromOk[error](o)
}

// Of runs f and captures its outcome.
func Of[O any](f func() (O, error)) Try[error, O] {
	o, err := f()
	return FromResult(o, err)
}

// IsAttempted reports whether t is Err or Ok.
func (t Try[E, O]) IsAttempted() bool {
	return t.inner.IsSome()
}

func (t Try[E, O]) IsOk() bool {
	e, ok := t.inner.Get()
	return ok && e.IsRight()
}

func (t Try[E, O]) IsErr() bool {
	e, ok := t.inner.Get()
	return ok && e.IsLeft()
}

// GetOk returns the success value and whether t is Ok.
func (t Try[E, O]) GetOk() (O, bool) {
	if e, ok := t.inner.Get(); ok && e.IsRight() {
		return e.Right(), true
	}
	var zero O
	return zero, false
}

// GetErr returns the error value and whether t is Err.
func (t Try[E, O]) GetErr() (E, bool) {
	if e, ok := t.inner.Get(); ok && e.IsLeft() {
		return e.Left(), true
	}
	var zero E
	return zero, false
}

// Ok returns the success value and panics with mona.ErrUnwrapEmpty
// otherwise.
func (t Try[E, O]) Ok() O {
	o, ok := t.GetOk()
	if !ok {
		mona.Fail(mona.ErrUnwrapEmpty, "try.Ok")
	}
	return o
}

// OkOption returns Some(o) for Ok and None otherwise.
func (t Try[E, O]) OkOption() option.Option[O] {
	return option.Bind(t.inner, func(e either.Either[E, O]) option.Option[O] {
		return e.RightOption()
	})
}

// Inner returns the underlying Option of Either.
func (t Try[E, O]) Inner() option.Option[either.Either[E, O]] {
	return t.inner
}

// IsBottom is always false; it completes mona.Sided.
func (t Try[E, O]) IsBottom() bool {
	return false
}

// IsLeft reports Err; it completes mona.Sided.
func (t Try[E, O]) IsLeft() bool {
	return t.IsErr()
}

// IsRight reports Ok; it completes mona.Sided.
func (t Try[E, O]) IsRight() bool {
	return t.IsOk()
}

func (t Try[E, O]) LeftAny() (any, bool) {
	if e, ok := t.GetErr(); ok {
		return e, true
	}
	return nil, false
}

func (t Try[E, O]) RightAny() (any, bool) {
	if o, ok := t.GetOk(); ok {
		return o, true
	}
	return nil, false
}

func (t Try[E, O]) LeftType() reflect.Type {
	return mona.TypeOf[E]()
}

func (t Try[E, O]) RightType() reflect.Type {
	return mona.TypeOf[O]()
}

// Equal compares the underlying Option of Either.
func (t Try[E, O]) Equal(other Try[E, O]) bool {
	return t.inner.Equal(other.inner)
}

// Hash is the hash of the underlying Option of Either.
func (t Try[E, O]) Hash() uint64 {
	return t.inner.Hash()
}

func (t Try[E, O]) String() string {
	e, ok := t.inner.Get()
	switch {
	case !ok:
		return "NotAttempted"
	case e.IsLeft():
		return fmt.Sprintf("Err(%v)", e.Left())
	default:
		return fmt.Sprintf("Ok(%v)", e.Right())
	}
}
