// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestClampPlayers(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, 0},
		{"small", 3, 3},
		{"at_cap", 500, 500},
		{"just_over_cap", 501, 500},
		{"far_over_cap", 100000, 500},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ClampPlayers(test.count); got != test.want {
				t.Errorf("ClampPlayers(%d) = %d, want %d", test.count, got, test.want)
			}
		})
	}
}

func TestDocumentWireShape(t *testing.T) {
	doc := Document{
		ServerFacts: ServerFacts{
			ServerUUID:   "c8b7f83a-6d1f-4a0e-9a35-0e2f6c0a1c55",
			PlayerAmount: 12,
		},
		Plugins: []PluginFacts{NewPluginFacts("example", "1.2.3")},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	encoded := string(data)

	// Server facts are inlined at the top level, not nested.
	for _, key := range []string{`"serverUUID"`, `"playerAmount"`, `"onlineMode"`, `"plugins"`} {
		if !strings.Contains(encoded, key) {
			t.Errorf("document missing %s:\n%s", key, encoded)
		}
	}

	// customCharts must marshal as an empty array, never null.
	if !strings.Contains(encoded, `"customCharts":[]`) {
		t.Errorf("customCharts did not marshal as []:\n%s", encoded)
	}
}
