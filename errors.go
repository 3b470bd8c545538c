package chk

import (
	"fmt"
	"time"
)

// chkError is the concrete type backing sentinel errors produced by the
// check layer itself, as opposed to errors from user conditions.
type chkError string

func (e chkError) Error() string { return string(e) }

// Sentinel errors.
var (
	// ErrTimeout is the class of all expiry failures raised by the strict
	// wait combinators ([Check.BeforeDeadline], [Check.WithinTimeout]).
	// Match with errors.Is; the concrete error is a [*TimeoutError].
	ErrTimeout error = chkError("condition not satisfied before timeout")
)

// TimeoutError reports that a strict wait expired before its condition
// was satisfied. It carries the configured window or deadline and the
// elapsed wall-clock time for diagnostics, and unwraps to [ErrTimeout].
type TimeoutError struct {
	// Deadline is the absolute expiry point of the wait.
	Deadline time.Time
	// Window is the configured duration for timeout-based waits; zero for
	// deadline-based waits.
	Window time.Duration
	// Elapsed is the wall-clock time spent polling before giving up.
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Window > 0 {
		return fmt.Sprintf(
			"condition not satisfied within %s (elapsed %s)",
			e.Window,
			e.Elapsed,
		)
	}

	return fmt.Sprintf(
		"condition not satisfied before %s (elapsed %s)",
		e.Deadline.Format(time.RFC3339Nano),
		e.Elapsed,
	)
}

// Unwrap makes errors.Is(err, ErrTimeout) succeed for every
// *TimeoutError.
func (e *TimeoutError) Unwrap() error { return ErrTimeout }
