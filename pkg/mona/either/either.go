package either

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/option"
)

type side uint8

const (
	bottom side = iota
	left
	right
)

// Either holds a Left value or a Right value. The zero value is Bottom.
type Either[L, R any] struct {
	left  L
	right R
	side  side
}

// FromLeft builds a Left. An absent payload panics with mona.ErrValueAbsent.
func FromLeft[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: mona.RequirePresent(v, "either.FromLeft"), side: left}
}

// FromRight builds a Right. An absent payload panics with mona.ErrValueAbsent.
func FromRight[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: mona.RequirePresent(v, "either.FromRight"), side: right}
}

// IsBottom reports whether e was never initialized by a factory.
func (e Either[L, R]) IsBottom() bool {
	return e.side == bottom
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == left
}

func (e Either[L, R]) IsRight() bool {
	return e.side == right
}

// trap panics with mona.ErrTrapState when e is Bottom.
func (e Either[L, R]) trap(op string) {
	if e.side == bottom {
		mona.Fail(mona.ErrTrapState, op)
	}
}

// GetLeft returns the Left payload and true, or zero and false for a Right.
func (e Either[L, R]) GetLeft() (L, bool) {
	e.trap("either.GetLeft")
	return e.left, e.side == left
}

// GetRight returns the Right payload and true, or zero and false for a Left.
func (e Either[L, R]) GetRight() (R, bool) {
	e.trap("either.GetRight")
	return e.right, e.side == right
}

// Left returns the Left payload and panics with mona.ErrUnwrapEmpty for a Right.
func (e Either[L, R]) Left() L {
	e.trap("either.Left")
	if e.side != left {
		mona.Fail(mona.ErrUnwrapEmpty, "either.Left")
	}
	return e.left
}

// Right returns the Right payload and panics with mona.ErrUnwrapEmpty for a Left.
func (e Either[L, R]) Right() R {
	e.trap("either.Right")
	if e.side != right {
		mona.Fail(mona.ErrUnwrapEmpty, "either.Right")
	}
	return e.right
}

// LeftOption returns Some(left) for a Left and None for a Right.
func (e Either[L, R]) LeftOption() option.Option[L] {
	e.trap("either.LeftOption")
	if e.side != left {
		return option.None[L]()
	}
	return option.Some(e.left)
}

// RightOption returns Some(right) for a Right and None for a Left.
func (e Either[L, R]) RightOption() option.Option[R] {
	e.trap("either.RightOption")
	if e.side != right {
		return option.None[R]()
	}
	return option.Some(e.right)
}

// FromOption returns Right(v) for Some(v) and Left(onNone()) for None.
func FromOption[L, R any](o option.Option[R], onNone func() L) Either[L, R] {
	if v, ok := o.Get(); ok {
		return FromRight[L](v)
	}
	return FromLeft[L, R](mona.RequireResult(onNone(), "either.FromOption"))
}

// All yields the Right payload once. Left and Bottom yield nothing.
func (e Either[L, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.side == right {
			yield(e.right)
		}
	}
}

// Swap mirrors the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	e.trap("either.Swap")
	if e.side == left {
		return Either[R, L]{right: e.left, side: right}
	}
	return Either[R, L]{left: e.right, side: left}
}

// LeftAny implements mona.Sided.
func (e Either[L, R]) LeftAny() (any, bool) {
	if e.side != left {
		return nil, false
	}
	return e.left, true
}

// RightAny implements mona.Sided.
func (e Either[L, R]) RightAny() (any, bool) {
	if e.side != right {
		return nil, false
	}
	return e.right, true
}

func (e Either[L, R]) LeftType() reflect.Type {
	return mona.TypeOf[L]()
}

func (e Either[L, R]) RightType() reflect.Type {
	return mona.TypeOf[R]()
}

// Equal never traps: two Bottoms are equal, and sides must match.
func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.side != other.side {
		return false
	}
	switch e.side {
	case left:
		return mona.Equal(e.left, other.left)
	case right:
		return mona.Equal(e.right, other.right)
	default:
		return true
	}
}

// Hash is consistent with Equal and never traps.
func (e Either[L, R]) Hash() uint64 {
	switch e.side {
	case left:
		return mona.Combine(byte(left), mona.Hash(e.left))
	case right:
		return mona.Combine(byte(right), mona.Hash(e.right))
	default:
		return mona.Combine(byte(bottom), 0)
	}
}

// String renders "Left(v)", "Right(v)" or "Bottom"; it never traps.
func (e Either[L, R]) String() string {
	switch e.side {
	case left:
		return fmt.Sprintf("Left(%v)", e.left)
	case right:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "Bottom"
	}
}
