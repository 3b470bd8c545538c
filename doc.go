// Package chk provides fluent, composable boolean checks for test code
// and polling-style waits.
//
// The central type is Check, an immutable, lazily evaluated condition
// that composes with logical combinators (And, Or, Not), repetition
// (IsConsistentFor, SucceedsWithinAttempts), wall-clock waits
// (Eventually, WithinTimeout, FinishesWithin), and background
// evaluation (InBackground, Always, Sometimes). Long-running checks
// can register with a Registry for HTTP status reporting.
package chk
