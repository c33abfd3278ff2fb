package mona

import (
	"errors"
	"fmt"
)

// Error kinds raised by the containers. All of them signal a programming
// defect at the call site; none is retried.
var (
	// ErrValueAbsent is raised when a factory receives an absent payload.
	ErrValueAbsent = errors.New("value absent")
	// ErrTrapState is raised when an Either in the Bottom state is used.
	ErrTrapState = errors.New("uninitialized either (bottom state)")
	// ErrResultAbsent is raised when a caller-supplied function returns an
	// absent value where a present one is required.
	ErrResultAbsent = errors.New("result became absent")
	// ErrUnwrapEmpty is raised when a required value is read from None.
	ErrUnwrapEmpty = errors.New("unwrap on empty")
)

// Error carries one of the kinds above together with the operation that
// raised it.
type Error struct {
	Kind error
	Op   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Fail panics with an *Error of the given kind.
func Fail(kind error, op string) {
	panic(&Error{Kind: kind, Op: op})
}

// Recover converts a panic carrying an *Error into an error stored in err.
// Any other panic value is re-raised.
//
//	func parse() (err error) {
//		defer mona.Recover(&err)
//		...
//	}
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	merr, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	if *err == nil {
		*err = merr
		return
	}
	*err = errors.Join(*err, merr)
}

// Catch runs f and returns the *Error it panicked with, if any.
func Catch(f func()) (err error) {
	defer Recover(&err)
	f()
	return nil
}
