// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/app"
)

// describeError turns an adapter error into the short reason shown to the
// user. The backend's own message wins when there is one.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *adapter.BackendError

	switch {
	case errors.As(err, &backendErr):
		if backendErr.Message != "" {
			return backendErr.Message
		}
		return backendErr.Error()

	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgServerUnreachable

	case errors.Is(err, adapter.ErrHTTPStatus):
		return strings.TrimPrefix(extractBody(err), adapter.ErrTransport.Error()+": ")

	case errors.Is(err, adapter.ErrProtocol):
		return app.MsgMalformedResponse
	}

	return err.Error()
}

// extractBody drops the "METHOD /path: " prefix added by the adapter.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
