package chk

import (
	"context"
	"sync/atomic"
)

// EvaluationCounter records how many times its derived checks have been
// evaluated. The checks returned by [EvaluationCounter.EvaluatedMoreThan]
// and [EvaluationCounter.EvaluatedFewerThan] share the counter, so
// evaluating either advances both. The counter is safe for concurrent
// use and pairs naturally with the repeating combinators: wrapping
// EvaluatedMoreThan(1) in SucceedsWithinAttempts(2) is true because the
// second attempt pushes the count past the threshold.
type EvaluationCounter struct {
	n atomic.Int64
}

// NewEvaluationCounter returns a counter with zero recorded evaluations.
func NewEvaluationCounter() *EvaluationCounter {
	return &EvaluationCounter{}
}

// Count returns the number of evaluations recorded so far.
func (c *EvaluationCounter) Count() int {
	return int(c.n.Load())
}

// EvaluatedMoreThan returns a Check that records its own evaluation and
// is true iff the total count, including the current evaluation, is
// strictly greater than times.
func (c *EvaluationCounter) EvaluatedMoreThan(times int) Check {
	return New(
		describe("evaluated-more-than", times),
		func(_ context.Context) (bool, error) {
			return int(c.n.Add(1)) > times, nil
		},
	)
}

// EvaluatedFewerThan returns a Check that records its own evaluation
// and is true iff the total count, including the current evaluation, is
// strictly less than times.
func (c *EvaluationCounter) EvaluatedFewerThan(times int) Check {
	return New(
		describe("evaluated-fewer-than", times),
		func(_ context.Context) (bool, error) {
			return int(c.n.Add(1)) < times, nil
		},
	)
}
