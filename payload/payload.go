// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload defines the JSON document submitted to the
// collection service. A document is built fresh for every submission
// cycle: one server-facts section describing the host, plus one
// plugin-facts section per registered reporter instance.
package payload

import "encoding/json"

// MaxReportedPlayers caps the player count in a report. Larger counts
// are indistinguishable to the collection service and capping them
// keeps a single huge network from skewing aggregate statistics.
const MaxReportedPlayers = 500

// ServerFacts describes the host proxy and its environment. Field
// names are wire-format constants understood by the collection
// service.
type ServerFacts struct {
	ServerUUID     string `json:"serverUUID"`
	PlayerAmount   int    `json:"playerAmount"`
	ManagedServers int    `json:"managedServers"`
	OnlineMode     int    `json:"onlineMode"`
	ProxyVersion   string `json:"proxyVersion"`
	RuntimeVersion string `json:"runtimeVersion"`
	OSName         string `json:"osName"`
	OSArch         string `json:"osArch"`
	OSVersion      string `json:"osVersion"`
	CoreCount      int    `json:"coreCount"`
}

// PluginFacts is one plugin's contribution to a report.
type PluginFacts struct {
	PluginName    string `json:"pluginName"`
	PluginVersion string `json:"pluginVersion"`

	// CustomCharts is always present in the wire format. Custom chart
	// kinds are not supported; the list is always empty.
	CustomCharts []json.RawMessage `json:"customCharts"`
}

// NewPluginFacts returns a PluginFacts section with the customCharts
// list initialized so it marshals as [] rather than null.
func NewPluginFacts(name, version string) PluginFacts {
	return PluginFacts{
		PluginName:    name,
		PluginVersion: version,
		CustomCharts:  []json.RawMessage{},
	}
}

// Document is the complete submission payload: server facts inline at
// the top level plus the plugins array.
type Document struct {
	ServerFacts
	Plugins []PluginFacts `json:"plugins"`
}

// ClampPlayers caps a player count at MaxReportedPlayers. Counts at or
// below the cap pass through unchanged.
func ClampPlayers(count int) int {
	if count > MaxReportedPlayers {
		return MaxReportedPlayers
	}
	return count
}
