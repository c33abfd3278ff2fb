// Package option provides Option[T], a container that either holds a value
// (Some) or holds nothing (None). The zero Option is None.
//
// Key operations:
// - None/Some/From/FromPointer/FromOk: construct an Option
// - Match/MatchOr/Do: evaluate exactly one branch
// - Map/Bind/Flatten: transform the value, collapsing absent results to None
// - Fold: accumulate over the 0 or 1 contained values
// - Filter/Recover/Tap: refine, substitute or observe without changing type
// - Or/OrElse/And/AndAlso: short-circuit combination
// - *Async variants: the same decisions around a transformation that may
//   block on external work
//
// Some panics with mona.ErrValueAbsent when handed a nil pointer, map,
// slice, channel, function or interface; From turns such input into None.
package option
