package config

import "time"

// Built-in defaults, used for every field no other source sets.
const (
	DefaultHTTPAddress    = "http://127.0.0.1:5000"
	DefaultAPIPrefix      = "/api"
	DefaultRequestTimeout = 10 * time.Second
	DefaultPollInterval   = time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			APIPrefix:      DefaultAPIPrefix,
			RequestTimeout: DefaultRequestTimeout,
		},
		Tracker: Tracker{
			PollInterval: DefaultPollInterval,
		},
	}
}
