package chk

import (
	"testing"
	"time"
)

func TestEmitWithNilHooksIsSafe(t *testing.T) {
	h := &Hooks{}

	// No fields set: every emit must be a no-op.
	h.emitPoll(0, true)
	h.emitTimeout(time.Second)
	h.emitLatchFlip(false)
	h.emitBackgroundDone(true)
}

func TestEmitForwardsArguments(t *testing.T) {
	var (
		gotAttempt int
		gotResult  bool
		gotElapsed time.Duration
	)

	h := &Hooks{
		OnPoll: func(attempt int, result bool) {
			gotAttempt = attempt
			gotResult = result
		},
		OnTimeout: func(elapsed time.Duration) { gotElapsed = elapsed },
	}

	h.emitPoll(3, true)
	h.emitTimeout(time.Minute)

	if gotAttempt != 3 || !gotResult {
		t.Fatalf(
			"emitPoll forwarded (%d, %v), want (3, true)",
			gotAttempt, gotResult,
		)
	}

	if gotElapsed != time.Minute {
		t.Fatalf("emitTimeout forwarded %v, want 1m", gotElapsed)
	}
}
