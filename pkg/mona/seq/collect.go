package seq

import (
	"github.com/ib-77/mona/pkg/mona"
	"github.com/ib-77/mona/pkg/mona/either"
	"github.com/ib-77/mona/pkg/mona/option"
)

// FirstOrNone returns the first element satisfying pred. Absent elements
// are skipped.
func FirstOrNone[T any](xs []T, pred func(T) bool) option.Option[T] {
	for _, x := range xs {
		if o := option.From(x); o.IsSome() && pred(x) {
			return o
		}
	}
	return option.None[T]()
}

// Find returns the first element equal to target under mona.Equal.
func Find[T any](xs []T, target T) option.Option[T] {
	return FirstOrNone(xs, func(x T) bool { return mona.Equal(x, target) })
}

// Choose maps every element with f and keeps the Some results.
func Choose[T, U any](xs []T, f func(T) option.Option[U]) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		if u, ok := f(x).Get(); ok {
			out = append(out, u)
		}
	}
	return out
}

// Somes keeps the values of the Some elements.
func Somes[T any](items []option.Option[T]) []T {
	return Choose(items, func(o option.Option[T]) option.Option[T] { return o })
}

// Traverse maps every element with f. The first None stops the walk and
// makes the whole result None.
func Traverse[T, U any](xs []T, f func(T) option.Option[U]) option.Option[[]U] {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		u, ok := f(x).Get()
		if !ok {
			return option.None[[]U]()
		}
		out = append(out, u)
	}
	return option.Some(out)
}

// Sequence turns a slice of Options into an Option of a slice.
func Sequence[T any](items []option.Option[T]) option.Option[[]T] {
	return Traverse(items, func(o option.Option[T]) option.Option[T] { return o })
}

// FoldOptions folds the Some values of items into seed. None elements are
// skipped.
func FoldOptions[T, S any](items []option.Option[T], seed S, f func(S, T) S) S {
	acc := seed
	for _, o := range items {
		acc = option.Fold(o, acc, f)
	}
	return acc
}

// Partition splits es into left and right payloads, preserving order.
// A Bottom element panics with mona.ErrTrapState.
func Partition[L, R any](es []either.Either[L, R]) ([]L, []R) {
	lefts := make([]L, 0, len(es))
	rights := make([]R, 0, len(es))
	for _, e := range es {
		e.Do(
			func(l L) { lefts = append(lefts, l) },
			func(r R) { rights = append(rights, r) })
	}
	return lefts, rights
}

func Lefts[L, R any](es []either.Either[L, R]) []L {
	lefts, _ := Partition(es)
	return lefts
}

func Rights[L, R any](es []either.Either[L, R]) []R {
	_, rights := Partition(es)
	return rights
}
