package chk

import "context"

// Pattern: Composite — logical combinators build expression trees out of
// child checks; evaluation order is always left to right with
// short-circuiting, so later children are skipped once the result is
// determined.

// All returns a Check that is true only if every child evaluates true.
// Children are evaluated left to right and evaluation stops at the
// first false child. With no children the result is vacuously true.
func All(checks ...Check) Check {
	return Check{
		desc: joinDescs(" && ", checks, "true"),
		eval: func(ctx context.Context) (bool, error) {
			for _, c := range checks {
				ok, err := c.Evaluate(ctx)
				if err != nil {
					return false, err
				}

				if !ok {
					return false, nil
				}
			}

			return true, nil
		},
	}
}

// Any returns a Check that is true if at least one child evaluates
// true. Children are evaluated left to right and evaluation stops at
// the first true child. With no children the result is vacuously false.
func Any(checks ...Check) Check {
	return Check{
		desc: joinDescs(" || ", checks, "false"),
		eval: func(ctx context.Context) (bool, error) {
			for _, c := range checks {
				ok, err := c.Evaluate(ctx)
				if err != nil {
					return false, err
				}

				if ok {
					return true, nil
				}
			}

			return false, nil
		},
	}
}

// Not returns the logical negation of c. Errors from c propagate
// unchanged; they are never converted to a boolean.
func Not(c Check) Check {
	return Check{
		desc: describe("not", c),
		eval: func(ctx context.Context) (bool, error) {
			ok, err := c.Evaluate(ctx)
			if err != nil {
				return false, err
			}

			return !ok, nil
		},
	}
}

// And is the two-child specialization of [All]: c is evaluated first,
// other only if c was true.
func (c Check) And(other Check) Check {
	return All(c, other)
}

// Or is the two-child specialization of [Any]: c is evaluated first,
// other only if c was false.
func (c Check) Or(other Check) Check {
	return Any(c, other)
}

// Not returns the logical negation of c.
func (c Check) Not() Check {
	return Not(c)
}

// joinDescs renders a combinator description like "(a && b && c)".
// empty is used when there are no children.
func joinDescs(sep string, checks []Check, empty string) string {
	if len(checks) == 0 {
		return empty
	}

	out := "("

	for i, c := range checks {
		if i > 0 {
			out += sep
		}

		out += c.String()
	}

	return out + ")"
}
