package chk

import (
	"context"
	"sync"
	"time"
)

// Cached returns a Check that memoizes the outcome of c for ttl:
// within the window, evaluations reuse the recorded boolean without
// re-running the condition. Errors are never cached — a failed
// evaluation leaves the previous entry intact and propagates. Useful
// when a condition is expensive and polled by several combinators at
// once.
func (c Check) Cached(ttl time.Duration, opts ...Option) Check {
	cfg := newWaitConfig(opts...)

	var (
		mu     sync.Mutex
		valid  bool
		result bool
		at     time.Time
	)

	return Check{
		desc: describe("cached", c, ttl),
		eval: func(ctx context.Context) (bool, error) {
			mu.Lock()
			defer mu.Unlock()

			if valid && cfg.clock.Since(at) < ttl {
				return result, nil
			}

			ok, err := c.Evaluate(ctx)
			if err != nil {
				return false, err
			}

			result = ok
			at = cfg.clock.Now()
			valid = true

			return ok, nil
		},
	}
}
