package config

import (
	"fmt"
	"time"
)

// LauncherApp holds application-level launcher settings.
type LauncherApp struct {
	// SetupTarget, when set, runs a single headless setup for that version.
	SetupTarget string
}

// LauncherAdapter holds network settings used by the launcher transport.
type LauncherAdapter struct {
	// BaseURL is the normalised backend URL, without trailing slash.
	BaseURL string
	// APIPrefix is the normalised path prefix, e.g. "/api".
	APIPrefix string
	// RequestTimeout is the timeout of one request/response exchange.
	RequestTimeout time.Duration
}

// LauncherTracker holds the setup tracker polling policy.
type LauncherTracker struct {
	// PollInterval is the delay between two status queries.
	PollInterval time.Duration
	// MaxPollDuration gives up on an operation after this long; zero
	// disables the limit.
	MaxPollDuration time.Duration
}

// LauncherLog holds log output settings.
type LauncherLog struct {
	// File is the client log path; empty means next to the executable.
	File string
}

// LauncherConfig is the top-level launcher configuration assembled from
// [StructuredConfig].
type LauncherConfig struct {
	App     LauncherApp
	Adapter LauncherAdapter
	Tracker LauncherTracker
	Log     LauncherLog
}

// Headless reports whether the launcher should run without the TUI.
func (c *LauncherConfig) Headless() bool {
	return c.App.SetupTarget != ""
}

// GetLauncherConfig builds the launcher config view from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetLauncherConfig(args []string) (*LauncherConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newLauncherConfig(cfg)
}

func newLauncherConfig(cfg *StructuredConfig) (*LauncherConfig, error) {
	baseURL, err := NormalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	return &LauncherConfig{
		App: LauncherApp{
			SetupTarget: cfg.App.SetupTarget,
		},
		Adapter: LauncherAdapter{
			BaseURL:        baseURL,
			APIPrefix:      NormalizeAPIPrefix(cfg.Adapter.APIPrefix),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Tracker: LauncherTracker{
			PollInterval:    cfg.Tracker.PollInterval,
			MaxPollDuration: cfg.Tracker.MaxPollDuration,
		},
		Log: LauncherLog{
			File: cfg.Log.File,
		},
	}, nil
}
