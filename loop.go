package chk

import (
	"context"
	"sync"
	"sync/atomic"
)

// LoopingCheck re-evaluates its wrapped check on an interval from a
// dedicated goroutine and maintains a latched boolean result. The latch
// starts at the variant's initial value ([Check.Always] starts true,
// [Check.Sometimes] starts false) and a single contrary evaluation
// permanently flips it; once flipped, the loop ends because the result
// can no longer change. After [LoopingCheck.Stop] returns, the
// goroutine has been joined and the latch is frozen.
//
// A LoopingCheck owns at most one goroutine: starting while running is
// a no-op, and a stopped loop cannot be restarted.
type LoopingCheck struct {
	check   Check
	cfg     waitConfig
	initial bool

	latch atomic.Bool

	mu       sync.Mutex
	running  bool
	finished bool
	stop     chan struct{}
	done     chan struct{}

	// err is written by the loop goroutine before done is closed and read
	// only after, mirroring the BackgroundCheck publication discipline.
	err error
}

// Always returns a LoopingCheck whose latch starts true and flips to
// false — permanently — on the first false evaluation. It answers "did
// the condition hold the whole time?".
func (c Check) Always(opts ...Option) *LoopingCheck {
	return newLooping(c, true, opts)
}

// Sometimes returns a LoopingCheck whose latch starts false and flips
// to true — permanently — on the first true evaluation. It answers "did
// the condition hold at any point?".
func (c Check) Sometimes(opts ...Option) *LoopingCheck {
	return newLooping(c, false, opts)
}

func newLooping(c Check, initial bool, opts []Option) *LoopingCheck {
	l := &LoopingCheck{
		check:   c,
		cfg:     newWaitConfig(opts...),
		initial: initial,
	}
	l.latch.Store(initial)

	return l
}

// Start launches the evaluation loop. Starting an already-running or
// already-stopped loop is a no-op.
func (l *LoopingCheck) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running || l.finished {
		return
	}

	l.running = true
	l.stop = make(chan struct{})
	l.done = make(chan struct{})

	go l.run(ctx)
}

func (l *LoopingCheck) run(ctx context.Context) {
	defer close(l.done)

	for attempt := 0; ; attempt++ {
		ok, err := l.check.Evaluate(ctx)
		if err != nil {
			// A condition error aborts the loop and freezes the latch; the
			// error surfaces through Err and Evaluate.
			l.err = err
			return
		}

		if ok != l.initial {
			l.latch.Store(ok)
			l.cfg.hooks.emitLatchFlip(ok)

			return
		}

		timer := l.cfg.clock.NewTimer(l.cfg.strategy.Next(attempt))

		select {
		case <-timer.C():
		case <-l.stop:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()

			l.err = ctx.Err()

			return
		}
	}
}

// Stop signals the loop to terminate and joins its goroutine. After
// Stop returns, no further writes to the latched result occur. Stopping
// a never-started or already-stopped loop is a no-op.
func (l *LoopingCheck) Stop() {
	l.mu.Lock()

	if !l.running {
		l.mu.Unlock()
		return
	}

	l.running = false
	l.finished = true

	close(l.stop)

	done := l.done

	l.mu.Unlock()

	<-done
}

// Result returns the latched value. Between Start and Stop it may lag
// the underlying condition by up to one poll interval; before Start it
// is the variant's initial value.
func (l *LoopingCheck) Result() bool {
	return l.latch.Load()
}

// Err returns the error that aborted the loop, or nil if the loop is
// still running, never failed, or never started.
func (l *LoopingCheck) Err() error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return l.err
	default:
		return nil
	}
}

// Evaluate returns the latched result without evaluating the condition
// on the calling thread. If the loop was aborted by a condition error,
// that error is returned instead.
func (l *LoopingCheck) Evaluate(_ context.Context) (bool, error) {
	if err := l.Err(); err != nil {
		return false, err
	}

	return l.latch.Load(), nil
}

// While runs fn with the loop active: the loop is started before fn and
// stopped on every exit path, so the returned latch is frozen. It
// returns the latched result, fn's error, or the error that aborted the
// loop, in that order of precedence for the error value.
func (l *LoopingCheck) While(ctx context.Context, fn func() error) (bool, error) {
	l.Start(ctx)
	defer l.Stop()

	if err := fn(); err != nil {
		return false, err
	}

	l.Stop()

	if err := l.Err(); err != nil {
		return false, err
	}

	return l.Result(), nil
}

// AsCheck adapts l back into a composable [Check] reporting the latched
// result.
func (l *LoopingCheck) AsCheck() Check {
	return Check{
		desc: l.String(),
		eval: l.Evaluate,
	}
}

// String returns the check's description.
func (l *LoopingCheck) String() string {
	if l.initial {
		return describe("always", l.check)
	}

	return describe("sometimes", l.check)
}

// Status implements [StatusReporter].
func (l *LoopingCheck) Status() CheckStatus {
	l.mu.Lock()
	running := l.running
	finished := l.finished
	l.mu.Unlock()

	result := l.latch.Load()

	status := CheckStatus{Result: &result, Healthy: result}

	switch {
	case running:
		status.State = StateRunning
	case finished:
		status.State = StateStopped
	default:
		status.State = StateIdle
	}

	if err := l.Err(); err != nil {
		status.Error = err.Error()
		status.Healthy = false
	}

	return status
}
