// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/proxystats/proxystats/payload"
)

const (
	// DefaultEndpoint is the collection service's submission URL.
	DefaultEndpoint = "https://proxystats.org/submitData/proxy"

	// apiVersion identifies the payload format to the collection
	// service. Bumped only when the wire format changes.
	apiVersion = "1"

	// DefaultUserAgent is the fixed user-agent the collection service
	// expects on submissions.
	DefaultUserAgent = "MC-Server/" + apiVersion
)

// Sender performs one fire-and-forget submission per call. The zero
// value works: it posts to DefaultEndpoint with http.DefaultClient and
// logs through slog.Default when a log toggle is set.
type Sender struct {
	// Endpoint overrides DefaultEndpoint. Tests point this at an
	// httptest server.
	Endpoint string

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// Client overrides http.DefaultClient. No timeout is configured
	// here; callers that want one inject a client carrying it.
	Client *http.Client

	// Logger receives the optional submission logs.
	Logger *slog.Logger

	// LogSentData logs the serialized document before compression.
	LogSentData bool

	// LogResponseStatusText logs the service's response status and body.
	LogResponseStatusText bool
}

// Submit serializes doc, compresses it, and posts it to the endpoint.
// The response body is always read to completion and discarded unless
// LogResponseStatusText is set. Any serialization, compression,
// transport, or HTTP-status error is returned to the caller, which is
// expected to log and drop it.
func (s *Sender) Submit(ctx context.Context, doc payload.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding usage report: %w", err)
	}

	if s.LogSentData {
		s.logger().Info("sending usage report", "payload", string(body))
	}

	compressed, err := Compress(body)
	if err != nil {
		return fmt.Errorf("compressing usage report: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("building submission request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Encoding", "gzip")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", s.userAgent())
	request.ContentLength = int64(len(compressed))
	request.Close = true

	response, err := s.client().Do(request)
	if err != nil {
		return fmt.Errorf("posting usage report: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading submission response: %w", err)
	}
	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("usage report rejected: %s", response.Status)
	}

	if s.LogResponseStatusText {
		s.logger().Info("usage report accepted",
			"status", response.Status,
			"response", string(responseBody),
		)
	}
	return nil
}

func (s *Sender) endpoint() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return DefaultEndpoint
}

func (s *Sender) userAgent() string {
	if s.UserAgent != "" {
		return s.UserAgent
	}
	return DefaultUserAgent
}

func (s *Sender) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *Sender) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
