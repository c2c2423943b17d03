package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the launcher command-line flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. http://127.0.0.1:5000)
//	-prefix API path prefix (e.g. /api)
//	-request-timeout request timeout (e.g. "10s")
//	-poll-interval delay between status queries (e.g. "1s")
//	-max-poll-duration give up after this long, 0 disables (e.g. "30m").
//	Sources merge first-non-zero-wins, so 0 here cannot clear a deadline
//	set in the JSON file; remove it from the file instead.
//	-target game version to set up headlessly
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address         string
		apiPrefix       string
		requestTimeout  time.Duration
		pollInterval    time.Duration
		maxPollDuration time.Duration
		target          string
		logFile         string
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("launcher", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Launcher backend base URL")
	fs.StringVar(&apiPrefix, "prefix", "", "API path prefix")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Status poll interval (e.g., 1s)")
	fs.DurationVar(&maxPollDuration, "max-poll-duration", 0, "Give up polling after this long, 0 disables (cannot clear a value from the config file)")
	fs.StringVar(&target, "target", "", "Game version to set up without the TUI")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SetupTarget: target,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			APIPrefix:      apiPrefix,
			RequestTimeout: requestTimeout,
		},
		Tracker: Tracker{
			PollInterval:    pollInterval,
			MaxPollDuration: maxPollDuration,
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
