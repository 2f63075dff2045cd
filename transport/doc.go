// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport submits usage reports to the collection service.
//
// A submission is one POST: the JSON document is gzip-compressed and
// sent with fixed identifying headers. There are no retries and no
// state across submissions; a failed cycle is simply dropped and the
// next scheduled cycle starts clean.
package transport
