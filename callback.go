package chk

import "context"

// OnSuccess returns a Check that evaluates c and synchronously invokes
// fn before returning when the result is true. A false result or an
// evaluation error skips the callback. Chained with
// [Check.OnFailure], at most one callback fires per evaluation.
func (c Check) OnSuccess(fn func()) Check {
	return Check{
		desc: describe("on-success", c),
		eval: func(ctx context.Context) (bool, error) {
			ok, err := c.Evaluate(ctx)
			if err != nil {
				return false, err
			}

			if ok && fn != nil {
				fn()
			}

			return ok, nil
		},
	}
}

// OnFailure is the mirror of [Check.OnSuccess]: fn fires only when c
// evaluates false. Evaluation errors skip the callback and propagate.
func (c Check) OnFailure(fn func()) Check {
	return Check{
		desc: describe("on-failure", c),
		eval: func(ctx context.Context) (bool, error) {
			ok, err := c.Evaluate(ctx)
			if err != nil {
				return false, err
			}

			if !ok && fn != nil {
				fn()
			}

			return ok, nil
		},
	}
}
