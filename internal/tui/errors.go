// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/app"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *adapter.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	if errors.Is(err, adapter.ErrNetwork) {
		return app.MsgServerUnreachable
	}
	if errors.Is(err, adapter.ErrProtocol) {
		return app.MsgMalformedResponse
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") {
		return app.MsgServerUnreachable
	}

	return err.Error()
}
