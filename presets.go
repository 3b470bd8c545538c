package chk

import "time"

// Pattern: Factory Function — each preset produces a ready-made option
// bundle for a common polling cadence, avoiding boilerplate
// configuration.

// QuickPoll returns options for conditions expected to flip almost
// immediately: 5ms constant interval.
func QuickPoll() []Option {
	return []Option{
		WithInterval(5 * time.Millisecond),
	}
}

// DefaultPoll returns the package defaults made explicit: 25ms constant
// interval.
func DefaultPoll() []Option {
	return []Option{
		WithInterval(DefaultInterval),
	}
}

// PatientPoll returns options for slow external conditions: an
// exponential ramp starting at 50ms so long waits back off instead of
// spinning.
func PatientPoll() []Option {
	return []Option{
		WithStrategy(ExponentialInterval(50 * time.Millisecond)),
	}
}
