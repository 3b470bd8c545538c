package chk

// ---------------------------------------------------------------------------
// StatusReporter interface
// ---------------------------------------------------------------------------.

type (
	// StatusReporter is implemented by the long-running check types
	// ([BackgroundCheck], [LoopingCheck]) so they can be observed through a
	// [Registry] without knowing how they evaluate.
	StatusReporter interface {
		// Status returns the current state of the check.
		Status() CheckStatus
	}

	// CheckStatus is a snapshot of a long-running check. Result is nil
	// while no result has been recorded yet.
	CheckStatus struct {
		Name    string `json:"name,omitempty"`
		State   string `json:"state"`
		Result  *bool  `json:"result,omitempty"`
		Error   string `json:"error,omitempty"`
		Healthy bool   `json:"healthy"`
	}
)

// Lifecycle states reported by [StatusReporter.Status].
const (
	// StateIdle means the check was created but never started.
	StateIdle = "idle"
	// StateRunning means the check's goroutine is active.
	StateRunning = "running"
	// StateFinished means a background evaluation completed.
	StateFinished = "finished"
	// StateStopped means a looping check was stopped and its latch frozen.
	StateStopped = "stopped"
)
