// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if _, err := NormalizeBaseURL(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Tracker.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidTrackerConfigs)
	}

	if cfg.Tracker.MaxPollDuration < 0 {
		return fmt.Errorf("%w: max poll duration must not be negative", ErrInvalidTrackerConfigs)
	}

	return nil
}

// NormalizeBaseURL trims raw, adds an http scheme when it is missing and
// strips trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// NormalizeAPIPrefix makes prefix start with exactly one slash and end with
// none. An empty or "/" prefix yields "".
func NormalizeAPIPrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
