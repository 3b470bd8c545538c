package chk

import (
	"context"
	"time"
)

// The latency combinators measure how long a single evaluation takes,
// not how long a condition needs to become true. The evaluation runs in
// its own goroutine and the caller waits until it finishes or the
// deadline passes; on expiry the goroutine keeps running to completion
// in the background, its result discarded.

// evalOutcome carries one evaluation result across the goroutine
// boundary.
type evalOutcome struct {
	ok  bool
	err error
}

// evalBefore runs one evaluation of c and waits for it until deadline.
// finished reports whether the evaluation completed in time.
func evalBefore(
	ctx context.Context,
	c Check,
	deadline time.Time,
	cfg waitConfig,
) (finished, result bool, err error) {
	ch := make(chan evalOutcome, 1)

	start := cfg.clock.Now()

	go func() {
		ok, evalErr := c.Evaluate(ctx)
		ch <- evalOutcome{ok: ok, err: evalErr}
	}()

	timer := cfg.clock.NewTimer(deadline.Sub(start))
	defer timer.Stop()

	select {
	case o := <-ch:
		return true, o.ok, o.err
	case <-timer.C():
		cfg.hooks.emitTimeout(cfg.clock.Since(start))
		return false, false, nil
	case <-ctx.Done():
		return false, false, ctx.Err() //nolint:wrapcheck // preserving context error identity
	}
}

// FinishesBefore returns a Check that is true iff a single evaluation
// of c completes strictly before the absolute deadline, regardless of
// the boolean result. An evaluation error that arrives in time
// propagates; expiry evaluates false.
func (c Check) FinishesBefore(deadline time.Time, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("finishes-before", c, deadline.Format(time.RFC3339Nano)),
		eval: func(ctx context.Context) (bool, error) {
			finished, _, err := evalBefore(ctx, c, deadline, cfg)
			if err != nil {
				return false, err
			}

			return finished, nil
		},
	}
}

// FinishesWithin is the duration form of [Check.FinishesBefore]: the
// deadline is re-armed at the start of every evaluation.
func (c Check) FinishesWithin(d time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("finishes-within", c, d),
		eval: func(ctx context.Context) (bool, error) {
			finished, _, err := evalBefore(ctx, c, cfg.clock.Now().Add(d), cfg)
			if err != nil {
				return false, err
			}

			return finished, nil
		},
	}
}

// IsTrueWithin returns a Check that is true iff a single evaluation of
// c completes within d and its result is true.
func (c Check) IsTrueWithin(d time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	return Check{
		desc: describe("is-true-within", c, d),
		eval: func(ctx context.Context) (bool, error) {
			finished, result, err := evalBefore(ctx, c, cfg.clock.Now().Add(d), cfg)
			if err != nil {
				return false, err
			}

			return finished && result, nil
		},
	}
}
