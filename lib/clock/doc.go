// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the injectable time abstraction used by the
// reporter's submission loop.
//
// Production code accepts a Clock instead of calling time.Now,
// time.After, or time.NewTicker directly. Real() provides standard
// library behavior; Fake() provides a deterministic clock for tests
// that advances only when Advance is called.
//
// When a goroutine calls After or NewTicker on a FakeClock it registers
// a pending waiter. Tests should call WaitForTimers to block until the
// waiter exists before calling Advance, which removes the race between
// timer registration and time advancement.
package clock
