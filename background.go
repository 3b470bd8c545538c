package chk

import (
	"context"
	"sync"
	"sync/atomic"
)

// BackgroundCheck evaluates its wrapped check exactly once on its own
// goroutine and records the outcome. The recorded result and error are
// written before the done channel is closed and read only after it, so
// no further synchronisation is needed.
type BackgroundCheck struct {
	check   Check
	hooks   *Hooks
	once    sync.Once
	started atomic.Bool
	done    chan struct{}
	result  bool
	err     error
}

// InBackground returns a BackgroundCheck for c. The returned check is
// idle: nothing is evaluated until [BackgroundCheck.Start] or
// [BackgroundCheck.Evaluate] is called.
func (c Check) InBackground(opts ...Option) *BackgroundCheck {
	cfg := newWaitConfig(opts...)

	return &BackgroundCheck{
		check: c,
		hooks: cfg.hooks,
		done:  make(chan struct{}),
	}
}

// Start launches the background evaluation. Calling Start more than
// once is a no-op; the wrapped check is evaluated exactly once per
// BackgroundCheck instance.
func (b *BackgroundCheck) Start(ctx context.Context) {
	b.once.Do(func() {
		b.started.Store(true)

		go func() {
			b.result, b.err = b.check.Evaluate(ctx)
			close(b.done)
			b.hooks.emitBackgroundDone(b.result)
		}()
	})
}

// Finished reports, without blocking, whether the background
// evaluation has completed.
func (b *BackgroundCheck) Finished() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// Result returns the recorded outcome. done is false until the
// background evaluation has completed; the result is meaningless until
// then.
func (b *BackgroundCheck) Result() (result, done bool) {
	select {
	case <-b.done:
		return b.result, true
	default:
		return false, false
	}
}

// Err returns the recorded evaluation error, or nil while the
// evaluation is still running.
func (b *BackgroundCheck) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Evaluate starts the background evaluation if needed, blocks until it
// completes, and returns the recorded outcome. It is the join-and-return
// operation.
func (b *BackgroundCheck) Evaluate(ctx context.Context) (bool, error) {
	b.Start(ctx)

	select {
	case <-b.done:
		return b.result, b.err
	case <-ctx.Done():
		return false, ctx.Err() //nolint:wrapcheck // preserving context error identity
	}
}

// AsCheck adapts b back into a composable [Check] whose evaluation
// joins the background task.
func (b *BackgroundCheck) AsCheck() Check {
	return Check{
		desc: b.String(),
		eval: b.Evaluate,
	}
}

// String returns the check's description.
func (b *BackgroundCheck) String() string {
	return describe("background", b.check)
}

// Status implements [StatusReporter].
func (b *BackgroundCheck) Status() CheckStatus {
	if !b.started.Load() {
		return CheckStatus{State: StateIdle, Healthy: true}
	}

	result, done := b.Result()
	if !done {
		return CheckStatus{State: StateRunning, Healthy: true}
	}

	status := CheckStatus{State: StateFinished, Result: &result, Healthy: result}
	if err := b.Err(); err != nil {
		status.Error = err.Error()
		status.Healthy = false
	}

	return status
}
