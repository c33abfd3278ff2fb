// Package gen produces random containers for property tests. It builds
// values only through the public factories of option, either and try.
package gen

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ib-77/mona/pkg/mona/either"
	"github.com/ib-77/mona/pkg/mona/option"
	"github.com/ib-77/mona/pkg/mona/try"
)

// N is the default number of iterations for a property check.
const N = 1000

// Gen draws a value from r.
type Gen[T any] func(r *rand.Rand) T

// New returns a deterministic source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Int returns an int in [-1000, 1000].
func Int(r *rand.Rand) int {
	return r.IntN(2001) - 1000
}

// String returns a printable ASCII string of length [0, 8].
func String(r *rand.Rand) string {
	b := make([]byte, r.IntN(9))
	for i := range b {
		b[i] = byte(r.IntN(95) + 32)
	}
	return string(b)
}

// UUID returns a version 4 UUID whose bytes come from r, so runs with the
// same seed see the same identifiers.
func UUID(r *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(reader{r})
	if err != nil {
		panic(err)
	}
	return id
}

// ID returns UUID(r) in its canonical string form.
func ID(r *rand.Rand) string {
	return UUID(r).String()
}

// Pointer returns nil one time in five and a pointer to g(r) otherwise.
func Pointer[T any](g Gen[T]) Gen[*T] {
	return func(r *rand.Rand) *T {
		if r.IntN(5) == 0 {
			return nil
		}
		v := g(r)
		return &v
	}
}

// Option returns None one time in four and Some(g(r)) otherwise.
func Option[T any](g Gen[T]) Gen[option.Option[T]] {
	return func(r *rand.Rand) option.Option[T] {
		if r.IntN(4) == 0 {
			return option.None[T]()
		}
		return option.From(g(r))
	}
}

// Either returns Left(l(r)) or Right(rg(r)) with equal odds.
func Either[L, R any](l Gen[L], rg Gen[R]) Gen[either.Either[L, R]] {
	return func(r *rand.Rand) either.Either[L, R] {
		if r.IntN(2) == 0 {
			return either.FromLeft[L, R](l(r))
		}
		return either.FromRight[L](rg(r))
	}
}

// Try returns NotAttempted, Err or Ok with equal odds.
func Try[E, O any](e Gen[E], o Gen[O]) Gen[try.Try[E, O]] {
	return func(r *rand.Rand) try.Try[E, O] {
		switch r.IntN(3) {
		case 0:
			return try.NotAttempted[E, O]()
		case 1:
			return try.FromErr[E, O](e(r))
		default:
			return try.FromOk[E](o(r))
		}
	}
}

// Slice returns a slice of length [0, max] filled from g.
func Slice[T any](g Gen[T], max int) Gen[[]T] {
	return func(r *rand.Rand) []T {
		xs := make([]T, r.IntN(max+1))
		for i := range xs {
			xs[i] = g(r)
		}
		return xs
	}
}

type reader struct {
	r *rand.Rand
}

func (rd reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rd.r.Uint32())
	}
	return len(p), nil
}
