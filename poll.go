package chk

import (
	"context"
	"time"
)

// Pattern: Polling Wait — a condition is re-evaluated on an interval
// until it reaches the wanted result or the deadline passes. Two expiry
// policies exist in this package and are never mixed per combinator:
// [Check.Eventually], [Check.SucceedsWithin] and [Check.FailsWithin]
// return false on expiry; [Check.BeforeDeadline] and
// [Check.WithinTimeout] fail with a [*TimeoutError].

// pollUntil repeatedly evaluates c until it returns want or the
// deadline passes. The condition is always evaluated at least once,
// even with an already-expired deadline. A condition error aborts the
// poll immediately. The reported elapsed duration covers the whole
// poll.
func pollUntil(
	ctx context.Context,
	c Check,
	want bool,
	deadline time.Time,
	cfg waitConfig,
) (satisfied bool, elapsed time.Duration, err error) {
	start := cfg.clock.Now()

	for attempt := 0; ; attempt++ {
		ok, err := c.Evaluate(ctx)
		if err != nil {
			return false, cfg.clock.Since(start), err
		}

		cfg.hooks.emitPoll(attempt, ok)

		if ok == want {
			return true, cfg.clock.Since(start), nil
		}

		remaining := deadline.Sub(cfg.clock.Now())
		if remaining <= 0 {
			elapsed := cfg.clock.Since(start)
			cfg.hooks.emitTimeout(elapsed)

			return false, elapsed, nil
		}

		// Never sleep past the deadline.
		delay := min(cfg.strategy.Next(attempt), remaining)

		timer := cfg.clock.NewTimer(delay)

		select {
		case <-timer.C():
		case <-ctx.Done():
			timer.Stop()
			return false, cfg.clock.Since(start), ctx.Err() //nolint:wrapcheck // preserving context error identity
		}
	}
}

// Eventually returns a Check that polls c until it becomes true or the
// window elapses. The window is re-armed at the start of every
// evaluation, so the returned check is reusable. On expiry it evaluates
// false; it never fails with a timeout error.
func (c Check) Eventually(window time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("eventually", c, window),
		eval: func(ctx context.Context) (bool, error) {
			ok, _, err := pollUntil(ctx, c, true, cfg.clock.Now().Add(window), cfg)
			return ok, err
		},
	}
}

// SucceedsWithin polls c until it becomes true, evaluating false if the
// duration elapses first. Semantically identical to [Check.Eventually].
func (c Check) SucceedsWithin(d time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("succeeds-within", c, d),
		eval: func(ctx context.Context) (bool, error) {
			ok, _, err := pollUntil(ctx, c, true, cfg.clock.Now().Add(d), cfg)
			return ok, err
		},
	}
}

// FailsWithin polls c until it becomes false, evaluating true when that
// happens and false if the duration elapses while c still holds.
func (c Check) FailsWithin(d time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("fails-within", c, d),
		eval: func(ctx context.Context) (bool, error) {
			ok, _, err := pollUntil(ctx, c, false, cfg.clock.Now().Add(d), cfg)
			return ok, err
		},
	}
}

// BeforeDeadline polls c until it becomes true or the absolute deadline
// passes. This is the strict variant: expiry fails with a
// [*TimeoutError] (matching [ErrTimeout]) rather than evaluating false.
// A true evaluation before the deadline never fails.
func (c Check) BeforeDeadline(deadline time.Time, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("before-deadline", c, deadline.Format(time.RFC3339Nano)),
		eval: func(ctx context.Context) (bool, error) {
			ok, elapsed, err := pollUntil(ctx, c, true, deadline, cfg)
			if err != nil {
				return false, err
			}

			if !ok {
				return false, &TimeoutError{Deadline: deadline, Elapsed: elapsed}
			}

			return true, nil
		},
	}
}

// WithinTimeout polls c until it becomes true or the timeout elapses.
// The timeout is re-armed at the start of every evaluation. Like
// [Check.BeforeDeadline], expiry fails with a [*TimeoutError].
func (c Check) WithinTimeout(timeout time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("within-timeout", c, timeout),
		eval: func(ctx context.Context) (bool, error) {
			deadline := cfg.clock.Now().Add(timeout)

			ok, elapsed, err := pollUntil(ctx, c, true, deadline, cfg)
			if err != nil {
				return false, err
			}

			if !ok {
				return false, &TimeoutError{
					Deadline: deadline,
					Window:   timeout,
					Elapsed:  elapsed,
				}
			}

			return true, nil
		},
	}
}
