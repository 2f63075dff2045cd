// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/proxystats/proxystats/payload"
)

func testDocument() payload.Document {
	return payload.Document{
		ServerFacts: payload.ServerFacts{
			ServerUUID:   "c8b7f83a-6d1f-4a0e-9a35-0e2f6c0a1c55",
			PlayerAmount: 42,
		},
		Plugins: []payload.PluginFacts{payload.NewPluginFacts("example", "1.0.0")},
	}
}

func TestSubmitRequestShape(t *testing.T) {
	var (
		gotHeader http.Header
		gotBody   []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request body: %v", err)
		}
		gotBody = body
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	sender := &Sender{Endpoint: server.URL, Client: server.Client()}
	if err := sender.Submit(context.Background(), testDocument()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	headerChecks := []struct {
		key  string
		want string
	}{
		{"Accept", "application/json"},
		{"Content-Encoding", "gzip"},
		{"Content-Type", "application/json"},
		{"User-Agent", DefaultUserAgent},
	}
	for _, check := range headerChecks {
		if got := gotHeader.Get(check.key); got != check.want {
			t.Errorf("header %s = %q, want %q", check.key, got, check.want)
		}
	}

	// The body is the gzipped JSON document.
	reader, err := gzip.NewReader(bytes.NewReader(gotBody))
	if err != nil {
		t.Fatalf("request body is not gzip: %v", err)
	}
	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("decompressing request body: %v", err)
	}

	var got payload.Document
	if err := json.Unmarshal(decompressed, &got); err != nil {
		t.Fatalf("request body is not the JSON document: %v", err)
	}
	if got.ServerUUID != "c8b7f83a-6d1f-4a0e-9a35-0e2f6c0a1c55" {
		t.Errorf("ServerUUID = %q", got.ServerUUID)
	}
	if len(got.Plugins) != 1 || got.Plugins[0].PluginName != "example" {
		t.Errorf("plugins section = %+v", got.Plugins)
	}
}

func TestSubmitErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := &Sender{Endpoint: server.URL, Client: server.Client()}
	if err := sender.Submit(context.Background(), testDocument()); err == nil {
		t.Fatal("Submit with 500 response = nil error, want error")
	}
}

func TestSubmitUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	sender := &Sender{Endpoint: server.URL}
	if err := sender.Submit(context.Background(), testDocument()); err == nil {
		t.Fatal("Submit to closed server = nil error, want error")
	}
}

func TestCompressRoundTrip(t *testing.T) {
	original, err := json.Marshal(testDocument())
	if err != nil {
		t.Fatal(err)
	}

	compressed, err := Compress(original)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}

	if !bytes.Equal(original, decompressed) {
		t.Errorf("round trip mismatch:\noriginal:     %q\ndecompressed: %q", original, decompressed)
	}
}
