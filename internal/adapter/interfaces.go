// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the launcher client
// and the launcher backend.
//
// The primary abstraction is [LauncherAdapter], which decouples the service
// layer from HTTP. The package ships an HTTP/REST implementation built on
// resty ([NewHTTPLauncherAdapter]).
//
// Error values defined in errors.go keep the failure kinds apart so callers
// can use [errors.Is] / [errors.As]: [ErrNetwork] when no response arrived,
// [ErrHTTPStatus] (and a per-code sentinel) for non-2xx responses,
// [ErrProtocol] for unexpected payloads and [*BackendError] when the backend
// explicitly answered with an error envelope. Network and HTTP status errors
// both match [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/fabric-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/launcher_adapter_mock.go -package=mock

// LauncherAdapter defines request/response communication with the launcher
// backend. Implementations never retry; every call is exactly one exchange.
type LauncherAdapter interface {
	// Setup asks the backend to start provisioning a Fabric environment.
	// A nil error means the backend accepted the job; the job itself runs
	// in the background and is observed through Status.
	Setup(ctx context.Context, req models.SetupRequest) (models.SetupResponse, error)

	// Status fetches the current state for target. InstallationStatus is
	// nil when the backend knows no job for target.
	Status(ctx context.Context, target string) (models.StatusResponse, error)

	// Versions lists the game versions the backend can provision.
	Versions(ctx context.Context) (models.VersionsResponse, error)

	// InstallMod installs the AI Builder mod into a provisioned version.
	InstallMod(ctx context.Context, req models.InstallModRequest) (models.InstallModResponse, error)

	// Launch fetches the launch instructions of a provisioned version.
	Launch(ctx context.Context, req models.LaunchRequest) (models.LaunchResponse, error)
}
