// Package either provides Either[L, R], a container holding exactly one of
// two alternatives. By convention Left carries the failure or alternative
// path and Right the main path.
//
// The zero Either is Bottom: it was never built by FromLeft or FromRight
// and is not a valid value. Every operation except Equal, Hash, String and
// the Is* predicates panics with mona.ErrTrapState on Bottom.
//
// Key operations:
// - FromLeft/FromRight: construct (absent payloads panic)
// - Match/Do: evaluate exactly one side
// - MapLeft/MapRight/BiMap: transform the active side
// - BindLeft/BindRight/BiBind: chain Either-returning functions
// - FoldLeft/FoldRight: accumulate over one side
// - Recover/Tap/Swap/All: recover, observe, mirror, enumerate
// - *Async variants around blocking transformations
package either
