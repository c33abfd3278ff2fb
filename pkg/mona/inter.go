package mona

import "reflect"

// Optional is the accessor surface of a single-slot container.
// option.Option satisfies it.
type Optional interface {
	// IsSome reports whether a value is present.
	IsSome() bool
	// Any returns the contained value boxed, and whether it is present.
	Any() (any, bool)
	// ElemType returns the type descriptor of the contained element.
	ElemType() reflect.Type
}

// Sided is the accessor surface of a two-sided container.
// either.Either and try.Try satisfy it.
type Sided interface {
	IsBottom() bool
	IsLeft() bool
	IsRight() bool
	// LeftAny returns the left payload boxed when the container is Left.
	LeftAny() (any, bool)
	// RightAny returns the right payload boxed when the container is Right.
	RightAny() (any, bool)
	LeftType() reflect.Type
	RightType() reflect.Type
}

// RawDecoder is implemented by pointers to containers that can be built
// from a raw, loosely typed value (decoded configuration, generic maps).
// decode converts raw into the value pointed to by target.
type RawDecoder interface {
	DecodeRaw(raw any, decode func(raw, target any) error) error
}

// Equaler is implemented by types with their own notion of equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Hasher is implemented by types that hash themselves consistently with
// their Equal method.
type Hasher interface {
	Hash() uint64
}
