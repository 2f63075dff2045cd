// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry coordinates the reporter instances that share a
// process. Each plugin embedding the library constructs its own
// reporter; all of them register into one Registry, and the first
// registrant becomes the leader that owns the periodic submission
// job. Later registrants only contribute plugin facts.
//
// Leadership by registration order replaces the marker-file protocol
// some telemetry libraries use to elect a leader across independently
// loaded copies: within one Go process there is exactly one copy of
// this package, so a shared, lock-protected list is sufficient and has
// no stale-leader edge cases.
package registry

import (
	"log/slog"
	"sync"

	"github.com/proxystats/proxystats/payload"
)

// Source supplies one plugin's section of a submission document. A
// reporter instance is a Source; the leader queries every registered
// Source once per cycle.
type Source interface {
	// PluginFacts returns the plugin's contribution to the current
	// cycle. An error omits the plugin from this cycle only; it is
	// queried again next cycle.
	PluginFacts() (payload.PluginFacts, error)
}

// Registry is an append-only list of reporter instances. Registrations
// last for the process lifetime; there is no removal.
type Registry struct {
	mu      sync.Mutex
	sources []Source
}

// New returns an empty Registry. Production code uses Shared(); tests
// construct their own to isolate leadership.
func New() *Registry { return &Registry{} }

var shared = New()

// Shared returns the process-wide registry that all reporters register
// into by default.
func Shared() *Registry { return shared }

// Register appends src and reports whether it is the first registrant
// and therefore the leader.
func (r *Registry) Register(src Source) (leader bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, src)
	return len(r.sources) == 1
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sources)
}

// Snapshot returns a copy of the registered sources in registration
// order.
func (r *Registry) Snapshot() []Source {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]Source, len(r.sources))
	copy(snapshot, r.sources)
	return snapshot
}

// Collect queries every registered source for its plugin facts. A
// source that errors is skipped for this cycle; there is no retry
// within the cycle.
func (r *Registry) Collect(logger *slog.Logger) []payload.PluginFacts {
	sources := r.Snapshot()
	facts := make([]payload.PluginFacts, 0, len(sources))
	for _, source := range sources {
		sectionFacts, err := source.PluginFacts()
		if err != nil {
			logger.Debug("skipping plugin facts source for this cycle", "error", err)
			continue
		}
		facts = append(facts, sectionFacts)
	}
	return facts
}
