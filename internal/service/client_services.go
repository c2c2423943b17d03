package service

import (
	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/juju/clock"
)

type ClientServices struct {
	Tracker  SetupTracker
	Launcher LauncherService
}

func NewClientServices(launcherAdapter adapter.LauncherAdapter, sink EventSink, cfg config.LauncherTracker, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Tracker:  NewSetupTracker(launcherAdapter, sink, cfg, clock.WallClock, log),
		Launcher: NewLauncherService(launcherAdapter, log),
	}
}
