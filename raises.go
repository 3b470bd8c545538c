package chk

import (
	"context"
	"errors"
)

// Raises returns a Check that evaluates c and converts an expected
// failure into a boolean: true when c fails with an error matching
// target (per errors.Is), false when c completes without error. Any
// non-matching error propagates unchanged — unrelated failures are
// never swallowed. The boolean result of c itself is discarded.
func (c Check) Raises(target error) Check {
	return Check{
		desc: describe("raises", target, c),
		eval: func(ctx context.Context) (bool, error) {
			_, err := c.Evaluate(ctx)
			if err == nil {
				return false, nil
			}

			if errors.Is(err, target) {
				return true, nil
			}

			return false, err
		},
	}
}

// RaisesAs is the typed-error form of [Check.Raises]: it matches any
// error in the chain assignable to E (per errors.As), covering wrapped
// and subtype-style errors.
func RaisesAs[E error](c Check) Check {
	var zero E

	return Check{
		desc: describe("raises-as", typeName(zero), c),
		eval: func(ctx context.Context) (bool, error) {
			_, err := c.Evaluate(ctx)
			if err == nil {
				return false, nil
			}

			var target E
			if errors.As(err, &target) {
				return true, nil
			}

			return false, err
		},
	}
}
