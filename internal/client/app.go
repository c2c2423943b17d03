package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/service"
	"github.com/MKhiriev/fabric-launcher/internal/tui"
	"github.com/MKhiriev/fabric-launcher/models"
)

type App struct {
	services *service.ClientServices

	// exactly one of ui and headless is set
	ui       userInterface
	headless *headlessSink
	target   string

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the launcher. With cfg.App.SetupTarget set the app runs a
// single setup without the TUI.
func NewApp(cfg *config.LauncherConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	launcherAdapter, err := adapter.NewHTTPLauncherAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create launcher adapter: %w", err)
	}

	if cfg.Headless() {
		sink := newHeadlessSink(log)
		return &App{
			services: service.NewClientServices(launcherAdapter, sink, cfg.Tracker, log),
			headless: sink,
			target:   cfg.App.SetupTarget,
			logger:   log,
		}, nil
	}

	sink := tui.NewProgramSink(log)
	services := service.NewClientServices(launcherAdapter, sink, cfg.Tracker, log)
	ui, err := tui.New(services, sink, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run implements [Client]. Every tracked setup is abandoned on return.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Tracker.Close()

	if a.headless != nil {
		return a.runHeadless(ctx)
	}
	return a.ui.Run(ctx)
}

// runHeadless tracks a single setup until it ends. An interrupt, whatever
// its cause, only stops tracking and is not an error.
func (a *App) runHeadless(ctx context.Context) error {
	id, err := a.services.Tracker.Start(ctx, models.SetupParams{GameVersion: a.target})
	if err != nil {
		if ctx.Err() != nil {
			a.logger.Warn().Err(err).Str("operation", id.String()).Msg("interrupted before the server answered")
			return nil
		}
		return fmt.Errorf("start setup: %w", err)
	}

	select {
	case err = <-a.headless.done:
		return err
	case <-ctx.Done():
		a.services.Tracker.Cancel(id)
		a.logger.Warn().Str("operation", id.String()).Msg("interrupted, the server keeps working on the setup")
		return nil
	}
}
