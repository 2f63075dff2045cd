// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/proxystats/proxystats/lib/clock"
	"github.com/proxystats/proxystats/lib/settings"
	"github.com/proxystats/proxystats/payload"
	"github.com/proxystats/proxystats/platform"
	"github.com/proxystats/proxystats/registry"
	"github.com/proxystats/proxystats/transport"
)

const (
	// initialDelay gives co-resident plugins time to finish loading
	// and construct their own reporters before the first report.
	initialDelay = 2 * time.Minute

	// submitInterval is fixed by the collection service. Submitting
	// more often gets a server blocked, not better data.
	submitInterval = 30 * time.Minute
)

// Options configures a Reporter. Platform, PluginName, and
// PluginVersion are required; everything else has working defaults.
type Options struct {
	// ConfigDir holds the shared settings file. All reporters in a
	// process should use the same directory. Defaults to
	// plugins/proxystats relative to the working directory.
	ConfigDir string

	// Platform adapts the embedding proxy's API.
	Platform platform.Platform

	// PluginName and PluginVersion identify the embedding plugin in
	// the report's plugins section.
	PluginName    string
	PluginVersion string

	// Logger receives construction warnings and the optional
	// submission logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry defaults to the process-wide shared registry. Tests
	// inject their own to isolate leadership.
	Registry *registry.Registry

	// Clock defaults to the real clock. Tests inject a fake to drive
	// the submission loop deterministically.
	Clock clock.Clock

	// Sender defaults to a zero transport.Sender posting to the
	// production endpoint.
	Sender *transport.Sender
}

// Reporter is one plugin's telemetry instance. Exactly one reporter
// per registry becomes the leader and owns the submission loop.
type Reporter struct {
	pluginName    string
	pluginVersion string

	settings settings.Settings
	platform platform.Platform
	logger   *slog.Logger
	registry *registry.Registry
	clock    clock.Clock
	sender   *transport.Sender

	enabled bool
	leader  bool
}

// New constructs a reporter and, when this is the first enabled
// reporter in the process, starts the submission loop. New never
// returns an error: a missing platform, unreadable settings, or a
// disabled settings file all produce an inert reporter, and the cause
// is logged. Cancelling ctx stops the submission loop.
func New(ctx context.Context, opts Options) *Reporter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &Reporter{
		pluginName:    opts.PluginName,
		pluginVersion: opts.PluginVersion,
		platform:      opts.Platform,
		logger:        logger,
		registry:      opts.Registry,
		clock:         opts.Clock,
		sender:        opts.Sender,
	}
	if r.registry == nil {
		r.registry = registry.Shared()
	}
	if r.clock == nil {
		r.clock = clock.Real()
	}
	if r.sender == nil {
		r.sender = &transport.Sender{}
	}

	if opts.Platform == nil || opts.PluginName == "" {
		logger.Warn("usage reporting disabled: platform and plugin name are required")
		return r
	}

	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = filepath.Join("plugins", "proxystats")
	}

	loaded, err := settings.Load(configDir)
	if err != nil {
		// Telemetry is disabled for this instance only; the host
		// plugin keeps running.
		logger.Warn("usage reporting disabled: settings unavailable", "error", err)
		return r
	}
	r.settings = loaded

	if !loaded.Enabled {
		return r
	}
	r.enabled = true

	r.sender.Logger = logger
	r.sender.LogSentData = loaded.LogSentData
	r.sender.LogResponseStatusText = loaded.LogResponseStatusText

	r.leader = r.registry.Register(r)
	if r.leader {
		go r.run(ctx)
	}
	return r
}

// Enabled reports whether this instance participates in reporting.
func (r *Reporter) Enabled() bool { return r.enabled }

// Leader reports whether this instance owns the submission loop.
func (r *Reporter) Leader() bool { return r.leader }

// PluginFacts implements registry.Source.
func (r *Reporter) PluginFacts() (payload.PluginFacts, error) {
	return payload.NewPluginFacts(r.pluginName, r.pluginVersion), nil
}

// run is the leader's submission loop: one report after initialDelay,
// then one per submitInterval for the rest of the process lifetime.
// Cycles are independent; nothing carries over from a failed cycle.
func (r *Reporter) run(ctx context.Context) {
	select {
	case <-r.clock.After(initialDelay):
	case <-ctx.Done():
		return
	}
	r.submit(ctx)

	ticker := r.clock.NewTicker(submitInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.submit(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// submit performs one cycle: gather facts, build the document, send.
// Errors never escape; a failure only costs this cycle's report.
func (r *Reporter) submit(ctx context.Context) {
	doc := payload.Document{
		ServerFacts: r.serverFacts(),
		Plugins:     r.registry.Collect(r.logger),
	}

	if err := r.sender.Submit(ctx, doc); err != nil {
		if r.settings.LogFailedRequests {
			r.logger.Warn("usage report submission failed", "error", err)
		}
	}
}

// serverFacts assembles the host section of the document from the
// proxy adapter and the ambient environment.
func (r *Reporter) serverFacts() payload.ServerFacts {
	env := platform.CollectEnv()

	onlineMode := 0
	if r.platform.OnlineMode() {
		onlineMode = 1
	}

	return payload.ServerFacts{
		ServerUUID:     r.settings.ServerUUID,
		PlayerAmount:   payload.ClampPlayers(r.platform.PlayerCount()),
		ManagedServers: r.platform.ManagedServerCount(),
		OnlineMode:     onlineMode,
		ProxyVersion:   r.platform.Version(),
		RuntimeVersion: env.RuntimeVersion,
		OSName:         env.OSName,
		OSArch:         env.OSArch,
		OSVersion:      env.OSVersion,
		CoreCount:      env.CoreCount,
	}
}
