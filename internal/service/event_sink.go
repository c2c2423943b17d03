// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/fabric-launcher/models"

//go:generate mockgen -source=event_sink.go -destination=../mock/event_sink_mock.go -package=mock

// EventSink receives everything the tracker wants the user to see.
//
// Methods are invoked while the tracker holds its internal lock, so
// implementations must return quickly and must not call back into the
// tracker on the same goroutine.
type EventSink interface {
	// Info reports a free-form line (acceptance, busy, transient errors).
	Info(text string)

	// Progress reports a status snapshot. percent is always within [0, 100].
	Progress(id models.OperationID, percent int, text string)

	// Completed reports that the operation finished successfully. No further
	// events follow for this run of id.
	Completed(id models.OperationID, text string)

	// Failed reports that the operation failed to start or failed on the
	// server. No further events follow for this run of id.
	Failed(id models.OperationID, text string)

	// Cancelled reports that tracking of id was stopped on request.
	Cancelled(id models.OperationID, text string)
}
