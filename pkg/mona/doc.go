// Package mona holds the pieces shared by the container packages: the Unit
// value, error kinds, absence detection, structural equality and hashing,
// and the minimal accessor contract collaborators rely on.
//
// The containers themselves live in subpackages:
// - option: Option[T], presence or absence of a value
// - either: Either[L, R], one of two alternatives plus the Bottom trap state
// - try: Try[E, O], not attempted / failed / succeeded
//
// Collaborators built on the public surface only:
// - seq: first-or-none, traverse, sequence and stream helpers
// - bridge: configuration decode hooks (mapstructure / viper)
// - inspect: zap fields for logging containers
// - gen: random containers for property tests
// - chain: fluent context-carrying wrapper over try.Try[error, T]
package mona
