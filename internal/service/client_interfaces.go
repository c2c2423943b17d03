package service

import (
	"context"

	"github.com/MKhiriev/fabric-launcher/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SetupTracker starts environment setups on the backend and follows them
// until they reach a terminal phase. At most one operation per
// [models.OperationID] is tracked at a time.
type SetupTracker interface {
	// Start requests a setup and, once the backend accepts it, polls its
	// status in the background. Returns ErrBusy if id is already tracked.
	// Every outcome is also reported to the EventSink.
	Start(ctx context.Context, params models.SetupParams) (models.OperationID, error)

	// Cancel stops tracking id. The backend job is not aborted. Responses
	// still in flight for id are discarded. Reports whether id was tracked.
	Cancel(id models.OperationID) bool

	// IsTracking reports whether id is currently starting or being polled.
	IsTracking(id models.OperationID) bool

	// Active lists tracked ids in lexical order.
	Active() []models.OperationID

	// Close cancels every operation without emitting events and waits for
	// background pollers to exit. Start fails with ErrTrackerClosed afterwards.
	Close()
}

// LauncherService wraps the one-shot backend calls around a setup.
type LauncherService interface {
	// Versions returns at most MaxVersions selectable game versions.
	Versions(ctx context.Context) ([]models.GameVersion, error)

	// Inspect reports what is installed for version and the progress of
	// any job the backend knows about.
	Inspect(ctx context.Context, version string) (models.InstallationReport, error)

	// InstallMod installs the AI Builder mod into a provisioned version.
	InstallMod(ctx context.Context, version string, withAIMod bool) (models.InstallModResponse, error)

	// Launch returns launch instructions for a provisioned version.
	Launch(ctx context.Context, version string) (string, error)
}
