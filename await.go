package chk

import (
	"context"
	"time"
)

// Await is a convenience function that polls c until it becomes true or
// the window elapses, without building an intermediate check by hand.
// It follows the [Check.Eventually] policy: false on expiry, error only
// when the condition itself fails or the context is cancelled.
func Await(
	ctx context.Context,
	c Check,
	window time.Duration,
	opts ...Option,
) (bool, error) {
	return c.Eventually(window, opts...).Evaluate(ctx)
}
