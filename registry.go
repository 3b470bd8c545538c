package chk

import (
	"sync"
	"sync/atomic"
)

// ---------------------------------------------------------------------------
// WatchStatus — aggregated state of all registered checks
// ---------------------------------------------------------------------------.

type (
	// WatchStatus is the result of snapshotting all registered checks.
	WatchStatus struct {
		Checks  []CheckStatus `json:"checks"`
		Healthy bool          `json:"healthy"`
	}

	// registration pairs a reporter with the name it was registered under.
	registration struct {
		name     string
		reporter StatusReporter
	}

	// Registry tracks named [StatusReporter] instances and derives an
	// aggregate status, typically for a test harness dashboard or a
	// wait-for-ready probe.
	//
	// Pattern: Singleton — DefaultRegistry uses sync.OnceValue for safe
	// lazy init; explicit registries can be created for tests.
	Registry struct {
		entries atomic.Pointer[[]registration]
		mu      sync.Mutex
	}
)

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}

	var empty []registration

	r.entries.Store(&empty)

	return r
}

// Register adds a reporter under the given name. It is safe for
// concurrent use but intended for setup.
func (r *Registry) Register(name string, reporter StatusReporter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := *r.entries.Load()
	// Copy-on-write so concurrent Snapshot calls never observe a slice
	// being appended to.
	updated := make([]registration, len(old), len(old)+1)
	copy(updated, old)
	updated = append(updated, registration{name: name, reporter: reporter})
	r.entries.Store(&updated)
}

// Snapshot collects the status of every registered check. Healthy is
// false if any check reports unhealthy.
func (r *Registry) Snapshot() WatchStatus {
	entries := *r.entries.Load()

	status := WatchStatus{
		Healthy: true,
		Checks:  make([]CheckStatus, 0, len(entries)),
	}

	for _, e := range entries {
		cs := e.reporter.Status()
		cs.Name = e.name
		status.Checks = append(status.Checks, cs)

		if !cs.Healthy {
			status.Healthy = false
		}
	}

	return status
}

// DefaultRegistry returns the package-level global registry, creating
// it on first call.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
