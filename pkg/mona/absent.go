package mona

import "reflect"

// IsAbsent reports whether v carries no value: the nil interface, or a nil
// pointer, map, slice, channel, function or interface. Value kinds are
// never absent.
func IsAbsent[T any](v T) bool {
	i := any(v)
	if i == nil {
		return true
	}

	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Present is the negation of IsAbsent.
func Present[T any](v T) bool {
	return !IsAbsent(v)
}

// RequirePresent panics with ErrValueAbsent when v is absent and returns v
// otherwise.
func RequirePresent[T any](v T, op string) T {
	if IsAbsent(v) {
		Fail(ErrValueAbsent, op)
	}
	return v
}

// RequireResult panics with ErrResultAbsent when a caller-supplied function
// produced an absent v.
func RequireResult[T any](v T, op string) T {
	if IsAbsent(v) {
		Fail(ErrResultAbsent, op)
	}
	return v
}

// TypeOf returns the type descriptor of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
