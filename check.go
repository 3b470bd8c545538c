package chk

import (
	"context"
	"fmt"
)

// Condition is the atomic predicate wrapped by a [Check]. It reports
// whether the condition currently holds, or fails with an error. Errors
// propagate unchanged through every combinator except [Check.Raises]
// and [RaisesAs], which are the designated error-to-boolean bridges.
type Condition func(ctx context.Context) (bool, error)

// Check is an immutable, lazily evaluated boolean expression. The zero
// value evaluates false. Checks are values: combinators never mutate
// their operands, so a Check may be shared, re-evaluated and composed
// freely. Only the background variants ([BackgroundCheck],
// [LoopingCheck]) carry mutable state.
type Check struct {
	eval Condition
	desc string
}

// New creates a Check from a condition. The description is used by
// [Check.String] and should read as a predicate ("file exists",
// "queue empty").
func New(desc string, cond Condition) Check {
	return Check{desc: desc, eval: cond}
}

// FromFunc adapts a plain zero-argument predicate into a Check.
func FromFunc(desc string, fn func() bool) Check {
	return New(desc, func(_ context.Context) (bool, error) {
		return fn(), nil
	})
}

// Evaluate runs the condition once. It is the single evaluation entry
// point for the whole combinator family: composed checks evaluate their
// children through it, left to right, with short-circuiting.
func (c Check) Evaluate(ctx context.Context) (bool, error) {
	if c.eval == nil {
		return false, nil
	}

	return c.eval(ctx)
}

// String returns the check's human-readable description.
func (c Check) String() string {
	if c.desc == "" {
		return "<check>"
	}

	return c.desc
}

// describe formats a derived check's description from a verb and its
// operands, e.g. "eventually(file exists, 2s)".
func describe(verb string, operands ...any) string {
	return verb + "(" + join(operands) + ")"
}

func join(operands []any) string {
	out := ""

	for i, op := range operands {
		if i > 0 {
			out += ", "
		}

		out += fmt.Sprint(op)
	}

	return out
}
