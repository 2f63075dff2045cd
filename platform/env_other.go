// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package platform

// osVersion is unavailable without uname; reports from non-Linux
// hosts carry an empty osVersion.
func osVersion() string { return "" }
