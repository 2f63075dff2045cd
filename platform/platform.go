// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform defines the reporter's only contact surface with
// the embedding proxy, and collects ambient process environment facts.
package platform

// Platform exposes the host proxy facts included in every report. The
// embedding plugin provides an implementation backed by the proxy API.
type Platform interface {
	// PlayerCount returns the number of players currently connected
	// to the proxy.
	PlayerCount() int

	// OnlineMode reports whether the proxy authenticates players
	// against the platform's session service.
	OnlineMode() bool

	// Version returns the proxy's version string.
	Version() string

	// ManagedServerCount returns the number of backend servers the
	// proxy routes to.
	ManagedServerCount() int
}

// Static is a fixed-value Platform for tests and the preview CLI.
type Static struct {
	Players        int
	Online         bool
	ProxyVersion   string
	ManagedServers int
}

func (s Static) PlayerCount() int        { return s.Players }
func (s Static) OnlineMode() bool        { return s.Online }
func (s Static) Version() string         { return s.ProxyVersion }
func (s Static) ManagedServerCount() int { return s.ManagedServers }
