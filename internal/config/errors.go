package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend transport settings
	// (for example, an unparsable address or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidTrackerConfigs indicates an invalid polling policy
	// (for example, a zero poll interval).
	ErrInvalidTrackerConfigs = errors.New("invalid tracker configuration")
)
