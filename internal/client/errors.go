package client

import "errors"

var (
	ErrSetupFailed    = errors.New("setup failed")
	ErrSetupCancelled = errors.New("setup cancelled")
)
