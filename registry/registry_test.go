// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/proxystats/proxystats/payload"
)

// fakeSource is a Source returning fixed facts or a fixed error.
type fakeSource struct {
	name string
	err  error
}

func (f *fakeSource) PluginFacts() (payload.PluginFacts, error) {
	if f.err != nil {
		return payload.PluginFacts{}, f.err
	}
	return payload.NewPluginFacts(f.name, "1.0.0"), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirstRegistrantIsLeader(t *testing.T) {
	reg := New()

	leaders := 0
	for i := 0; i < 5; i++ {
		if reg.Register(&fakeSource{name: fmt.Sprintf("plugin-%d", i)}) {
			leaders++
		}
	}

	if leaders != 1 {
		t.Errorf("leaders = %d, want exactly 1", leaders)
	}
	if got := reg.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestRegisterConcurrent(t *testing.T) {
	reg := New()

	const instances = 32
	results := make(chan bool, instances)
	var wg sync.WaitGroup
	for i := 0; i < instances; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results <- reg.Register(&fakeSource{name: fmt.Sprintf("plugin-%d", i)})
		}(i)
	}
	wg.Wait()
	close(results)

	leaders := 0
	for isLeader := range results {
		if isLeader {
			leaders++
		}
	}
	if leaders != 1 {
		t.Errorf("leaders = %d, want exactly 1", leaders)
	}
	if got := reg.Len(); got != instances {
		t.Errorf("Len() = %d, want %d", got, instances)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	reg := New()
	reg.Register(&fakeSource{name: "a"})

	snapshot := reg.Snapshot()
	reg.Register(&fakeSource{name: "b"})

	if len(snapshot) != 1 {
		t.Errorf("snapshot grew after later registration: len = %d, want 1", len(snapshot))
	}
	if got := reg.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestCollectSkipsErroringSources(t *testing.T) {
	reg := New()
	reg.Register(&fakeSource{name: "healthy-1"})
	reg.Register(&fakeSource{name: "broken", err: fmt.Errorf("facts unavailable")})
	reg.Register(&fakeSource{name: "healthy-2"})

	facts := reg.Collect(discardLogger())

	if len(facts) != 2 {
		t.Fatalf("Collect returned %d sections, want 2", len(facts))
	}
	if facts[0].PluginName != "healthy-1" || facts[1].PluginName != "healthy-2" {
		t.Errorf("Collect order = %q, %q; want healthy-1, healthy-2",
			facts[0].PluginName, facts[1].PluginName)
	}
}

func TestCollectEmptyRegistry(t *testing.T) {
	facts := New().Collect(discardLogger())
	if len(facts) != 0 {
		t.Errorf("Collect on empty registry returned %d sections, want 0", len(facts))
	}
}
