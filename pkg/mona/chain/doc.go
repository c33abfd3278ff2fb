// Package chain provides a fluent, context-carrying wrapper around
// try.Try[error, T] for railway-style flows.
//
// A step runs only while the chain is Ok. A failed step switches the chain
// to Err and every following step is skipped. Steps also stop when the
// carried context is done; the context error becomes the chain error.
//
// Common usage:
// - Start/FromValue: begin a chain
// - Then/ThenTry/Map/Validate: run steps (methods keep T, functions change it)
// - Ensure: side effects without changing the result
// - Or/And: combine alternative or required chains
// - Finally: collapse into a single value
package chain
