// Package try provides Try[E, O], the outcome of a computation that may not
// have run yet: NotAttempted, Err(e) or Ok(o). It is an
// option.Option[either.Either[E, O]] underneath and never exposes an
// uninitialized Either; the zero Try is NotAttempted.
//
// Highlights:
// - NotAttempted/FromOk/FromErr/FromResult/Of: construct
// - Match/MatchAll: reduce to a value
// - Map/MapErr/Bind/Fold: transform the outcome
// - Recover/Tap/TapErr: recover from or observe an outcome
// - MapAsync/BindAsync/MatchAsync: the same around blocking work
package try
