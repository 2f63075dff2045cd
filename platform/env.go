// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import "runtime"

// EnvFacts describes the process environment: Go runtime, OS, and CPU
// topology. All values are ambient; nothing identifies the host.
type EnvFacts struct {
	RuntimeVersion string
	OSName         string
	OSArch         string
	OSVersion      string
	CoreCount      int
}

// CollectEnv gathers environment facts for one submission cycle.
func CollectEnv() EnvFacts {
	return EnvFacts{
		RuntimeVersion: runtime.Version(),
		OSName:         runtime.GOOS,
		OSArch:         runtime.GOARCH,
		OSVersion:      osVersion(),
		CoreCount:      runtime.NumCPU(),
	}
}
