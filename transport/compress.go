// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

// Compress gzips data for the request body. The collection service
// requires gzip; uncompressed submissions are rejected.
func Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buffer.Bytes(), nil
}
