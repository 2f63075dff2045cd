// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings loads the shared proxystats settings file.
//
// The file lives at <dir>/config.yml and is created with defaults on
// first run, including a freshly generated random server identifier.
// Every reporter instance in the process reads the same file; none
// mutates it after load. Server owners opt out by setting enabled to
// false.
package settings
