// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/models"
)

// headlessSink writes tracker events as log entries and reports the first
// terminal outcome on done.
type headlessSink struct {
	logger *logger.Logger
	done   chan error
}

func newHeadlessSink(log *logger.Logger) *headlessSink {
	return &headlessSink{
		logger: log.WithComponent("setup"),
		done:   make(chan error, 1),
	}
}

func (s *headlessSink) finish(err error) {
	select {
	case s.done <- err:
	default:
	}
}

func (s *headlessSink) Info(text string) {
	s.logger.Info().Msg(text)
}

func (s *headlessSink) Progress(id models.OperationID, percent int, text string) {
	s.logger.Info().
		Str("operation", id.String()).
		Int("progress", percent).
		Msg(text)
}

func (s *headlessSink) Completed(id models.OperationID, text string) {
	s.logger.Info().Str("operation", id.String()).Msg(text)
	s.finish(nil)
}

func (s *headlessSink) Failed(id models.OperationID, text string) {
	s.logger.Error().Str("operation", id.String()).Msg(text)
	s.finish(fmt.Errorf("%w: %s", ErrSetupFailed, text))
}

func (s *headlessSink) Cancelled(id models.OperationID, text string) {
	s.logger.Warn().Str("operation", id.String()).Msg(text)
	s.finish(ErrSetupCancelled)
}
