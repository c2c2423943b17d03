// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/service"
	"github.com/MKhiriev/fabric-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

// sender is the part of *tea.Program the sink needs.
type sender interface {
	Send(msg tea.Msg)
}

// ProgramSink forwards tracker events into a running bubbletea program as
// messages. Events reported before Attach are logged and dropped.
type ProgramSink struct {
	mu     sync.RWMutex
	target sender

	logger *logger.Logger
}

var _ service.EventSink = (*ProgramSink)(nil)

// NewProgramSink creates a sink that is not yet attached to a program.
func NewProgramSink(log *logger.Logger) *ProgramSink {
	return &ProgramSink{logger: log.WithComponent("tui-sink")}
}

// Attach routes all further events to p.
func (s *ProgramSink) Attach(p sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = p
}

func (s *ProgramSink) send(msg tea.Msg) {
	s.mu.RLock()
	target := s.target
	s.mu.RUnlock()

	if target == nil {
		s.logger.Debug().Interface("event", msg).Msg("event dropped, no program attached")
		return
	}
	target.Send(msg)
}

func (s *ProgramSink) Info(text string) {
	s.send(infoMsg{text: text})
}

func (s *ProgramSink) Progress(id models.OperationID, percent int, text string) {
	s.send(progressMsg{id: id, percent: percent, text: text})
}

func (s *ProgramSink) Completed(id models.OperationID, text string) {
	s.send(completedMsg{id: id, text: text})
}

func (s *ProgramSink) Failed(id models.OperationID, text string) {
	s.send(failedMsg{id: id, text: text})
}

func (s *ProgramSink) Cancelled(id models.OperationID, text string) {
	s.send(cancelledMsg{id: id, text: text})
}
