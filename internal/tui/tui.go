// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/service"
	"github.com/MKhiriev/fabric-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: services are not configured")

type TUI struct {
	services  *service.ClientServices
	sink      *ProgramSink
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New creates the interactive launcher. sink must be the EventSink the
// tracker in services reports to; Run attaches it to the program.
func New(services *service.ClientServices, sink *ProgramSink, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || sink == nil {
		return nil, ErrNoServices
	}
	return &TUI{
		services:  services,
		sink:      sink,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newLauncherModel(ctx, t.services, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.sink.Attach(p)

	t.logger.Info().Msg("tui started")
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// interrupted from outside, not a failure
		return nil
	}
	return err
}
