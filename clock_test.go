package chk

import (
	"sync"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test helpers: fake clock and timer for deterministic wait testing
// ---------------------------------------------------------------------------

// fakeTimer fires immediately with a pre-filled channel.
type fakeTimer struct {
	ch chan time.Time
}

func (t *fakeTimer) C() <-chan time.Time { return t.ch }
func (t *fakeTimer) Stop() bool          { return false }

// fakeClock keeps a virtual now. Every timer records its duration,
// advances the virtual time by it and fires immediately, so polling
// loops run deterministically at full speed while observing simulated
// wall-clock progress.
type fakeClock struct {
	mu        sync.Mutex
	now       time.Time
	durations []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *fakeClock) NewTimer(d time.Duration) Timer {
	c.mu.Lock()
	c.durations = append(c.durations, d)
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	t := &fakeTimer{ch: make(chan time.Time, 1)}
	t.ch <- now

	return t
}

// Advance moves the virtual time forward without a timer.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *fakeClock) timerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.durations)
}

func (c *fakeClock) getDurations() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.durations))
	copy(out, c.durations)
	return out
}

// ---------------------------------------------------------------------------
// Tests: RealClock
// ---------------------------------------------------------------------------

func TestRealClockNow(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Fatalf("RealClock.Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestRealClockSince(t *testing.T) {
	start := time.Now().Add(-time.Second)

	if got := (RealClock{}).Since(start); got < time.Second {
		t.Fatalf("RealClock.Since() = %v, want >= 1s", got)
	}
}

func TestRealClockTimerFires(t *testing.T) {
	timer := RealClock{}.NewTimer(time.Millisecond)

	select {
	case <-timer.C():
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
}

func TestRealClockTimerStop(t *testing.T) {
	timer := RealClock{}.NewTimer(time.Hour)

	if !timer.Stop() {
		t.Fatal("Stop() = false, want true for unfired timer")
	}
}
