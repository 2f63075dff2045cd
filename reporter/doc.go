// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package reporter is the embedding surface of proxystats. A plugin
// constructs one Reporter at startup:
//
//	reporter.New(ctx, reporter.Options{
//	    Platform:      proxyAdapter,
//	    PluginName:    "my-plugin",
//	    PluginVersion: "1.4.2",
//	})
//
// Construction never fails and never blocks the host: when settings
// cannot be loaded, or the server owner has opted out, the reporter is
// inert. Otherwise it registers into the process-wide registry; the
// first reporter constructed in the process becomes the leader and runs
// the submission loop, which reports once after two minutes and every
// thirty minutes thereafter. All other reporters only contribute their
// plugin facts to the leader's cycles.
//
// Every failure past construction is contained: a failed cycle is
// logged (if enabled) and dropped, and the next cycle starts clean.
package reporter
