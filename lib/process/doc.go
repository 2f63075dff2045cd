// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for the proxystats
// command-line tools. Library code embedded in plugins must never exit
// the host process; raw stderr output and os.Exit are confined to this
// package and used only from cmd/ main functions.
package process
