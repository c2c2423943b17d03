// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// launcher. It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the launcher backend address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Tracker holds the polling policy of the setup tracker.
	Tracker Tracker `envPrefix:"TRACKER_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SetupTarget switches the launcher to headless mode: the given game
	// version is set up without the TUI and the process exits when the
	// operation finishes.
	// Env: APP_SETUP_TARGET
	SetupTarget string `env:"SETUP_TARGET"`
}

// Adapter holds the settings of the HTTP transport to the launcher backend.
type Adapter struct {
	// HTTPAddress is the base URL of the launcher backend
	// (e.g. "http://127.0.0.1:5000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIPrefix is the path prefix of every backend endpoint (e.g. "/api").
	// Env: ADAPTER_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`

	// RequestTimeout bounds a single request/response exchange
	// (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Tracker holds the polling policy of the setup tracker.
type Tracker struct {
	// PollInterval is the delay between two status queries.
	// Env: TRACKER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MaxPollDuration gives up on an operation that has not reached a
	// terminal phase after this long. Zero disables the limit.
	// Env: TRACKER_MAX_POLL_DURATION
	MaxPollDuration time.Duration `env:"MAX_POLL_DURATION"`
}

// Log holds log output settings.
type Log struct {
	// File is where the interactive client writes its log. Empty means a
	// "logs" file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
