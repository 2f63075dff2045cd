// Copyright 2026 The Proxystats Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file name inside the settings directory.
const FileName = "config.yml"

// Settings is the on-disk reporter configuration. Loaded once per
// reporter construction and never mutated afterwards.
type Settings struct {
	// Enabled controls whether any data is collected or sent. When
	// false, reporters neither register nor schedule submissions.
	Enabled bool `yaml:"enabled"`

	// ServerUUID is a random identifier generated on first run. It
	// carries no information about the server beyond distinguishing
	// it from other installations.
	ServerUUID string `yaml:"serverUuid"`

	// LogFailedRequests logs a warning when a submission cycle fails.
	LogFailedRequests bool `yaml:"logFailedRequests"`

	// LogSentData logs the full JSON document before each submission.
	LogSentData bool `yaml:"logSentData"`

	// LogResponseStatusText logs the collection service's response.
	LogResponseStatusText bool `yaml:"logResponseStatusText"`
}

// Load reads the settings file from dir, creating the directory and a
// default file (enabled, fresh server UUID, all log toggles off) when
// absent. Any I/O or parse error is returned to the caller; the
// reporter treats that as "telemetry disabled for this instance".
func Load(dir string) (Settings, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Settings{}, fmt.Errorf("creating settings directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDefault(path); err != nil {
			return Settings{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := loaded.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return loaded, nil
}

// Validate checks the loaded settings for errors.
func (s Settings) Validate() error {
	var errs []error

	if s.ServerUUID == "" {
		errs = append(errs, fmt.Errorf("serverUuid is required"))
	} else if _, err := uuid.Parse(s.ServerUUID); err != nil {
		errs = append(errs, fmt.Errorf("serverUuid is not a valid UUID: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// writeDefault writes the first-run settings file. The banner explains
// to server owners what is collected and how to opt out; the key order
// is fixed so diffs across installations stay readable.
func writeDefault(path string) error {
	content := fmt.Sprintf(`# proxystats collects anonymous usage data so plugin authors can see
# how widely their plugins are used. Nothing in the report identifies
# this server or its players, and collection has no measurable cost.
# Set enabled to false to opt out.
enabled: true
serverUuid: %q
logFailedRequests: false
logSentData: false
logResponseStatusText: false
`, uuid.NewString())

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing default settings: %w", err)
	}
	return nil
}
