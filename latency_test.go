package chk

import (
	"context"
	"errors"
	"testing"
	"time"
)

// slowCheck completes after d of real time with the given result.
func slowCheck(result bool, d time.Duration) Check {
	return FromFunc("slow", func() bool {
		time.Sleep(d)
		return result
	})
}

// ---------------------------------------------------------------------------
// Tests: FinishesWithin
// ---------------------------------------------------------------------------

func TestFinishesWithinFastEvaluation(t *testing.T) {
	c := slowCheck(true, 50*time.Millisecond)

	ok, err := c.FinishesWithin(200 * time.Millisecond).
		Evaluate(context.Background())
	if err != nil {
		t.Fatalf("FinishesWithin() error = %v, want nil", err)
	}

	if !ok {
		t.Fatal("FinishesWithin() = false, want true")
	}
}

func TestFinishesWithinSlowEvaluation(t *testing.T) {
	c := slowCheck(true, 200*time.Millisecond)

	ok, err := c.FinishesWithin(50 * time.Millisecond).
		Evaluate(context.Background())
	if err != nil {
		t.Fatalf("FinishesWithin() error = %v, want nil", err)
	}

	if ok {
		t.Fatal("FinishesWithin() = true, want false")
	}
}

func TestFinishesWithinIgnoresBooleanResult(t *testing.T) {
	// Completion latency is what is measured, not truthiness.
	c := slowCheck(false, 10*time.Millisecond)

	ok, err := c.FinishesWithin(200 * time.Millisecond).
		Evaluate(context.Background())
	if err != nil {
		t.Fatalf("FinishesWithin() error = %v, want nil", err)
	}

	if !ok {
		t.Fatal("FinishesWithin() = false for false-but-fast check, want true")
	}
}

func TestFinishesWithinPropagatesInnerError(t *testing.T) {
	sentinel := errors.New("boom")

	_, err := erroring(sentinel).FinishesWithin(time.Second).
		Evaluate(context.Background())
	if !errors.Is(err, sentinel) {
		t.Fatalf("FinishesWithin() error = %v, want %v", err, sentinel)
	}
}

// ---------------------------------------------------------------------------
// Tests: FinishesBefore
// ---------------------------------------------------------------------------

func TestFinishesBeforeDeadline(t *testing.T) {
	cases := []struct {
		evalTime time.Duration
		budget   time.Duration
		want     bool
	}{
		{50 * time.Millisecond, 200 * time.Millisecond, true},
		{200 * time.Millisecond, 50 * time.Millisecond, false},
	}

	for _, tc := range cases {
		c := slowCheck(true, tc.evalTime)

		ok, err := c.FinishesBefore(time.Now().Add(tc.budget)).
			Evaluate(context.Background())
		if err != nil {
			t.Fatalf("FinishesBefore() error = %v, want nil", err)
		}

		if ok != tc.want {
			t.Fatalf(
				"FinishesBefore() = %v for eval %v within %v, want %v",
				ok, tc.evalTime, tc.budget, tc.want,
			)
		}
	}
}

// ---------------------------------------------------------------------------
// Tests: IsTrueWithin
// ---------------------------------------------------------------------------

func TestIsTrueWithin(t *testing.T) {
	cases := []struct {
		result   bool
		evalTime time.Duration
		budget   time.Duration
		want     bool
	}{
		{true, 50 * time.Millisecond, 200 * time.Millisecond, true},
		{false, 50 * time.Millisecond, 200 * time.Millisecond, false},
		{true, 200 * time.Millisecond, 50 * time.Millisecond, false},
	}

	for _, tc := range cases {
		c := slowCheck(tc.result, tc.evalTime)

		ok, err := c.IsTrueWithin(tc.budget).Evaluate(context.Background())
		if err != nil {
			t.Fatalf("IsTrueWithin() error = %v, want nil", err)
		}

		if ok != tc.want {
			t.Fatalf(
				"IsTrueWithin() = %v for (%v, %v, %v), want %v",
				ok, tc.result, tc.evalTime, tc.budget, tc.want,
			)
		}
	}
}

func TestIsTrueWithinEmitsTimeoutHook(t *testing.T) {
	var timedOut bool

	hooks := &Hooks{OnTimeout: func(_ time.Duration) { timedOut = true }}

	_, err := slowCheck(true, 200*time.Millisecond).
		IsTrueWithin(20*time.Millisecond, WithHooks(hooks)).
		Evaluate(context.Background())
	if err != nil {
		t.Fatalf("IsTrueWithin() error = %v, want nil", err)
	}

	if !timedOut {
		t.Fatal("OnTimeout hook did not fire")
	}
}
