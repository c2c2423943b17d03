package service

import "errors"

var (
	ErrEmptyTarget   = errors.New("game version is empty")
	ErrInvalidTarget = errors.New("game version contains unsupported characters")

	// ErrBusy is returned by Start while an operation with the same id is
	// starting or being polled.
	ErrBusy = errors.New("operation already in progress")

	// ErrCancelled is returned by Start when the operation was cancelled
	// while its start request was in flight.
	ErrCancelled = errors.New("operation cancelled")

	ErrTrackerClosed = errors.New("tracker is closed")
)
