package chk

import (
	"math"
	"math/rand/v2"
	"time"
)

// IntervalStrategy determines the pause between poll evaluations.
//
// Pattern: Strategy — swap spacing algorithms (constant, ramp,
// exponential, jitter) without changing the polling loop.
type IntervalStrategy interface {
	// Next returns the duration to wait before the given poll attempt
	// (0-indexed: attempt 0 is the pause after the first evaluation).
	Next(attempt int) time.Duration
}

// IntervalFunc adapts an ordinary function into an [IntervalStrategy].
type IntervalFunc func(attempt int) time.Duration

// Next calls the underlying function.
func (f IntervalFunc) Next(attempt int) time.Duration { return f(attempt) }

// ---------------------------------------------------------------------------
// ConstantInterval
// ---------------------------------------------------------------------------

// constantInterval returns the same pause for every attempt.
type constantInterval struct {
	d time.Duration
}

func (s *constantInterval) Next(_ int) time.Duration { return s.d }

// ConstantInterval returns an [IntervalStrategy] that always pauses for
// a fixed duration d regardless of the attempt number.
func ConstantInterval(d time.Duration) IntervalStrategy {
	return &constantInterval{d: d}
}

// ---------------------------------------------------------------------------
// LinearRampInterval
// ---------------------------------------------------------------------------

// linearRampInterval returns step * (attempt + 1).
type linearRampInterval struct {
	step time.Duration
}

func (s *linearRampInterval) Next(attempt int) time.Duration {
	return s.step * time.Duration(attempt+1)
}

// LinearRampInterval returns an [IntervalStrategy] whose pause grows
// linearly: step * (attempt + 1). Useful when the condition is expected
// to flip quickly but may occasionally take much longer.
func LinearRampInterval(step time.Duration) IntervalStrategy {
	return &linearRampInterval{step: step}
}

// ---------------------------------------------------------------------------
// ExponentialInterval
// ---------------------------------------------------------------------------

// exponentialInterval returns base * 2^attempt.
type exponentialInterval struct {
	base time.Duration
}

func (s *exponentialInterval) Next(attempt int) time.Duration {
	return time.Duration(float64(s.base) * math.Pow(2, float64(attempt)))
}

// ExponentialInterval returns an [IntervalStrategy] whose pause doubles
// with each attempt: base * 2^attempt.
func ExponentialInterval(base time.Duration) IntervalStrategy {
	return &exponentialInterval{base: base}
}

// ---------------------------------------------------------------------------
// JitterInterval
// ---------------------------------------------------------------------------

// jitterInterval returns a random duration in [0, base].
type jitterInterval struct {
	base time.Duration
}

func (s *jitterInterval) Next(_ int) time.Duration {
	if s.base <= 0 {
		return 0
	}

	return time.Duration(rand.Int64N(int64(s.base) + 1))
}

// JitterInterval returns an [IntervalStrategy] whose pause is a random
// duration uniformly distributed in [0, base]. This spreads poll
// evaluations across time when many waits share a resource.
func JitterInterval(base time.Duration) IntervalStrategy {
	return &jitterInterval{base: base}
}
