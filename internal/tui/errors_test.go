package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "Invalid Minecraft version", humanizeError(fmt.Errorf("POST /setup: %w", &adapter.BackendError{StatusCode: 400, Message: "Invalid Minecraft version"})))
	assert.Equal(t, app.MsgServerUnreachable, humanizeError(fmt.Errorf("GET /versions: %w", adapter.ErrNetwork)))
	assert.Equal(t, app.MsgMalformedResponse, humanizeError(fmt.Errorf("GET /versions: %w", adapter.ErrProtocol)))
	assert.Equal(t, app.MsgServerUnreachable, humanizeError(errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")))
	assert.Equal(t, "something else", humanizeError(errors.New("something else")))
}
