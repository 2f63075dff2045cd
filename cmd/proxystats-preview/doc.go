// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// proxystats-preview prints the exact usage report a submission cycle
// would send, without sending anything. It loads (creating if needed)
// the settings file from --config-dir, assembles a document from the
// flag-supplied proxy facts and the local environment, and writes the
// JSON to stdout. Plugin authors and server owners use it to audit
// what would be reported before enabling telemetry.
package main
