package chk

import "time"

// Hooks holds optional callback functions for check lifecycle events.
// All fields are nil by default; callers set only the hooks they care
// about. Once constructed, a Hooks value must not be mutated — emit
// methods read the function fields without synchronisation, which is
// safe as long as the struct is read-only after initialisation.
//
// Pattern: Observer — decouples wait/loop event emission from consumers
// (logging, test diagnostics) without combinators knowing about
// observers.
type Hooks struct {
	// OnPoll fires after every evaluation inside a polling wait, with the
	// 0-indexed attempt number and the evaluation result.
	OnPoll func(attempt int, result bool)
	// OnTimeout fires when a polling wait or latency combinator expires.
	OnTimeout func(elapsed time.Duration)
	// OnLatchFlip fires when a looping check's latched result flips.
	OnLatchFlip func(result bool)
	// OnBackgroundDone fires when a background evaluation completes.
	OnBackgroundDone func(result bool)
}

func (h *Hooks) emitPoll(attempt int, result bool) {
	if h.OnPoll != nil {
		h.OnPoll(attempt, result)
	}
}

func (h *Hooks) emitTimeout(elapsed time.Duration) {
	if h.OnTimeout != nil {
		h.OnTimeout(elapsed)
	}
}

func (h *Hooks) emitLatchFlip(result bool) {
	if h.OnLatchFlip != nil {
		h.OnLatchFlip(result)
	}
}

func (h *Hooks) emitBackgroundDone(result bool) {
	if h.OnBackgroundDone != nil {
		h.OnBackgroundDone(result)
	}
}
