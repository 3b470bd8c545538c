package chk

import "context"

// RepeatedAnd returns a Check that evaluates c up to times times and is
// true only if every evaluation is true. The same check object is
// evaluated each time (stateful conditions see every attempt), stopping
// at the first false evaluation. times <= 0 is vacuously true.
func RepeatedAnd(c Check, times int) Check {
	return Check{
		desc: describe("consistently", c, times),
		eval: func(ctx context.Context) (bool, error) {
			for range max(times, 0) {
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

// RepeatedOr returns a Check that evaluates c up to times times and is
// true if any evaluation is true, stopping at the first true
// evaluation. times <= 0 is vacuously false.
func RepeatedOr(c Check, times int) Check {
	return Check{
		desc: describe("succeeds-within-attempts", c, times),
		eval: func(ctx context.Context) (bool, error) {
			for range max(times, 0) {
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

// IsConsistentFor requires c to hold on times consecutive evaluations.
func (c Check) IsConsistentFor(times int) Check {
	return RepeatedAnd(c, times)
}

// SucceedsWithinAttempts requires c to hold at least once in times
// evaluations.
func (c Check) SucceedsWithinAttempts(times int) Check {
	return RepeatedOr(c, times)
}
