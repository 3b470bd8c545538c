package chk

import (
	"context"
	"time"
)

// Delayed returns a Check that sleeps for delay and then evaluates c
// once. The sleep respects context cancellation; a cancelled wait
// returns the context error without evaluating c. Every evaluation of
// the returned check contributes at least delay of wall-clock time.
func (c Check) Delayed(delay time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("after", delay, c),
		eval: func(ctx context.Context) (bool, error) {
			timer := cfg.clock.NewTimer(delay)

			select {
			case <-timer.C():
			case <-ctx.Done():
				timer.Stop()
				return false, ctx.Err() //nolint:wrapcheck // preserving context error identity
			}

			return c.Evaluate(ctx)
		},
	}
}

// DeadlineExceeded returns a non-blocking Check that is true iff the
// current time is strictly after deadline.
func DeadlineExceeded(deadline time.Time, opts ...Option) Check {
	return deadlineExceeded(deadline, newWaitConfig(opts...))
}

// TimeoutExceeded returns a non-blocking Check whose deadline is fixed
// at now + timeout when the check is constructed, not at each
// evaluation.
func TimeoutExceeded(timeout time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return deadlineExceeded(cfg.clock.Now().Add(timeout), cfg)
}

func deadlineExceeded(deadline time.Time, cfg waitConfig) Check {
	return Check{
		desc: describe("deadline-exceeded", deadline.Format(time.RFC3339Nano)),
		eval: func(_ context.Context) (bool, error) {
			return cfg.clock.Now().After(deadline), nil
		},
	}
}
