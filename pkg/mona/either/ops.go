package either

import "github.com/ib-77/mona/pkg/mona"

// Match evaluates onLeft or onRight according to the side of e.
// Bottom panics with mona.ErrTrapState, an absent result with
// mona.ErrResultAbsent.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	e.trap("either.Match")
	if e.side == left {
		return mona.RequireResult(onLeft(e.left), "either.Match")
	}
	return mona.RequireResult(onRight(e.right), "either.Match")
}

// Do runs onLeft or onRight for their side effects. Either may be nil.
func (e Either[L, R]) Do(onLeft func(L), onRight func(R)) mona.Unit {
	e.trap("either.Do")
	if e.side == left {
		if onLeft != nil {
			onLeft(e.left)
		}
	} else if onRight != nil {
		onRight(e.right)
	}
	return mona.U
}

// MapLeft transforms a Left payload; a Right passes through.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	e.trap("either.MapLeft")
	if e.side == right {
		return Either[L2, R]{right: e.right, side: right}
	}
	return Either[L2, R]{left: mona.RequireResult(f(e.left), "either.MapLeft"), side: left}
}

// MapRight transforms a Right payload; a Left passes through.
func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	e.trap("either.MapRight")
	if e.side == left {
		return Either[L, R2]{left: e.left, side: left}
	}
	return Either[L, R2]{right: mona.RequireResult(f(e.right), "either.MapRight"), side: right}
}

// BiMap transforms whichever side is active.
func BiMap[L, R, L2, R2 any](e Either[L, R], onLeft func(L) L2, onRight func(R) R2) Either[L2, R2] {
	e.trap("either.BiMap")
	if e.side == left {
		return Either[L2, R2]{left: mona.RequireResult(onLeft(e.left), "either.BiMap"), side: left}
	}
	return Either[L2, R2]{right: mona.RequireResult(onRight(e.right), "either.BiMap"), side: right}
}

// BindRight chains f on a Right; a Left passes through. A Bottom returned
// by f panics with mona.ErrResultAbsent.
func BindRight[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	e.trap("either.BindRight")
	if e.side == left {
		return Either[L, R2]{left: e.left, side: left}
	}
	return requireBound(f(e.right), "either.BindRight")
}

// BindLeft chains f on a Left; a Right passes through.
func BindLeft[L, R, L2 any](e Either[L, R], f func(L) Either[L2, R]) Either[L2, R] {
	e.trap("either.BindLeft")
	if e.side == right {
		return Either[L2, R]{right: e.right, side: right}
	}
	return requireBound(f(e.left), "either.BindLeft")
}

// BiBind chains onLeft or onRight, whichever matches the side of e.
func BiBind[L, R, L2, R2 any](e Either[L, R],
	onLeft func(L) Either[L2, R2], onRight func(R) Either[L2, R2]) Either[L2, R2] {

	e.trap("either.BiBind")
	if e.side == left {
		return requireBound(onLeft(e.left), "either.BiBind")
	}
	return requireBound(onRight(e.right), "either.BiBind")
}

// Flatten removes one level of nesting on the right.
func Flatten[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	return BindRight(e, func(inner Either[L, R]) Either[L, R] { return inner })
}

// FoldLeft combines seed with a Left payload. A Right returns seed.
func FoldLeft[L, R, S any](e Either[L, R], seed S, f func(S, L) S) S {
	e.trap("either.FoldLeft")
	if e.side != left {
		return seed
	}
	return f(seed, e.left)
}

// FoldRight combines seed with a Right payload. A Left returns seed.
func FoldRight[L, R, S any](e Either[L, R], seed S, f func(S, R) S) S {
	e.trap("either.FoldRight")
	if e.side != right {
		return seed
	}
	return f(seed, e.right)
}

// Recover turns a Left into Right(f(left)). A Right is returned unchanged.
func (e Either[L, R]) Recover(f func(L) R) Either[L, R] {
	e.trap("either.Recover")
	if e.side == right {
		return e
	}
	return Either[L, R]{right: mona.RequireResult(f(e.left), "either.Recover"), side: right}
}

// GetRightOrElse returns the Right payload or f applied to the Left one.
func (e Either[L, R]) GetRightOrElse(f func(L) R) R {
	e.trap("either.GetRightOrElse")
	if e.side == right {
		return e.right
	}
	return f(e.left)
}

// Tap runs onLeft or onRight and returns e unchanged. Either may be nil.
func (e Either[L, R]) Tap(onLeft func(L), onRight func(R)) Either[L, R] {
	e.Do(onLeft, onRight)
	return e
}

// TapLeft runs action on a Left payload and returns e unchanged.
func (e Either[L, R]) TapLeft(action func(L)) Either[L, R] {
	return e.Tap(action, nil)
}

// TapRight runs action on a Right payload and returns e unchanged.
func (e Either[L, R]) TapRight(action func(R)) Either[L, R] {
	return e.Tap(nil, action)
}

func requireBound[L, R any](e Either[L, R], op string) Either[L, R] {
	if e.side == bottom {
		mona.Fail(mona.ErrResultAbsent, op)
	}
	return e
}
