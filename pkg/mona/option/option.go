package option

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/mona/pkg/mona"
)

// Option holds either no value (None) or exactly one present value (Some).
type Option[T any] struct {
	value T
	some  bool
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some wraps a present value. An absent value panics with
// mona.ErrValueAbsent; use From to accept possibly absent input.
func Some[T any](value T) Option[T] {
	return Option[T]{value: mona.RequirePresent(value, "option.Some"), some: true}
}

// From wraps value, turning absent input into None.
func From[T any](value T) Option[T] {
	if mona.IsAbsent(value) {
		return None[T]()
	}
	return Option[T]{value: value, some: true}
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return From(*p)
}

// FromOk adapts the comma-ok idiom:
//
//	v, ok := m[k]
//	o := option.FromOk(v, ok)
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return From(value)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns the contained value and panics with mona.ErrUnwrapEmpty
// on None.
func (o Option[T]) Value() T {
	if !o.some {
		mona.Fail(mona.ErrUnwrapEmpty, "option.Value")
	}
	return o.value
}

// GetValueOrDefault returns the value, or fallback on None.
func (o Option[T]) GetValueOrDefault(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// GetValueOrElse returns the value, or the result of fallback on None.
// fallback is not called for Some.
func (o Option[T]) GetValueOrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// ToPointer returns a pointer to a copy of the value, or nil on None.
// FromPointer(o.ToPointer()) equals o.
func (o Option[T]) ToPointer() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// All yields the value once for Some and nothing for None.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// Any implements mona.Optional.
func (o Option[T]) Any() (any, bool) {
	if !o.some {
		return nil, false
	}
	return o.value, true
}

// ElemType implements mona.Optional.
func (o Option[T]) ElemType() reflect.Type {
	return mona.TypeOf[T]()
}

// Equal reports whether both are None, or both are Some with equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	if !o.some {
		return true
	}
	return mona.Equal(o.value, other.value)
}

// Hash is consistent with Equal.
func (o Option[T]) Hash() uint64 {
	if !o.some {
		return mona.Combine(0, 0)
	}
	return mona.Combine(1, mona.Hash(o.value))
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
