// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/utils"
	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackend serves POST /api/setup and answers every status query with
// status.
func newBackend(t *testing.T, status models.InstallationStatus) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/setup", func(w http.ResponseWriter, r *http.Request) {
			var req models.SetupRequest
			require.NoError(t, utils.ReadJSON(r, &req))
			if req.MCVersion == "0.0.0" {
				_, _ = utils.WriteJSON(w, models.APIResponse{Status: models.StatusError, Message: "Invalid Minecraft version"}, http.StatusBadRequest)
				return
			}
			_, _ = utils.WriteJSON(w, models.SetupResponse{
				APIResponse: models.APIResponse{Status: models.StatusSuccess, Message: "Setting up Minecraft " + req.MCVersion},
			}, http.StatusOK)
		})
		r.Get("/status/{mc_version}", func(w http.ResponseWriter, r *http.Request) {
			st := status
			_, _ = utils.WriteJSON(w, models.StatusResponse{
				APIResponse:        models.APIResponse{Status: models.StatusSuccess},
				InstallationStatus: &st,
			}, http.StatusOK)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func headlessConfig(serverURL, target string) *config.LauncherConfig {
	return &config.LauncherConfig{
		App: config.LauncherApp{SetupTarget: target},
		Adapter: config.LauncherAdapter{
			BaseURL:        serverURL,
			APIPrefix:      "/api",
			RequestTimeout: time.Second,
		},
		Tracker: config.LauncherTracker{PollInterval: 10 * time.Millisecond},
	}
}

func TestNewApp_InvalidAdapterConfig(t *testing.T) {
	_, err := NewApp(&config.LauncherConfig{}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_InteractiveByDefault(t *testing.T) {
	app, err := NewApp(headlessConfig("http://127.0.0.1:5000", ""), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, app.ui)
	assert.Nil(t, app.headless)
}

func TestApp_Headless_Completes(t *testing.T) {
	srv := newBackend(t, models.InstallationStatus{Status: "success", Progress: 100, Message: "done"})

	app, err := NewApp(headlessConfig(srv.URL, "1.20.1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, app.services.Tracker.Active())
}

func TestApp_Headless_ServerReportsFailure(t *testing.T) {
	srv := newBackend(t, models.InstallationStatus{Status: "error", Progress: 40, Message: "Fabric installer crashed"})

	app, err := NewApp(headlessConfig(srv.URL, "1.20.1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.ErrorIs(t, err, ErrSetupFailed)
	assert.Contains(t, err.Error(), "Fabric installer crashed")
}

func TestApp_Headless_RejectedAtStart(t *testing.T) {
	srv := newBackend(t, models.InstallationStatus{})

	app, err := NewApp(headlessConfig(srv.URL, "0.0.0"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.ErrorIs(t, err, adapter.ErrBackendReported)
}

func TestApp_Headless_InterruptCancelsTracking(t *testing.T) {
	srv := newBackend(t, models.InstallationStatus{Status: "running", Progress: 10, Message: "downloading"})

	app, err := NewApp(headlessConfig(srv.URL, "1.20.1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, app.services.Tracker.Active())
}

func TestApp_Headless_InterruptWithCause(t *testing.T) {
	srv := newBackend(t, models.InstallationStatus{Status: "running", Progress: 10, Message: "downloading"})

	app, err := NewApp(headlessConfig(srv.URL, "1.20.1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancelCause(context.Background())
	time.AfterFunc(100*time.Millisecond, func() { cancel(errors.New("interrupt signal received")) })

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, app.services.Tracker.Active())
}

func TestApp_Headless_SignalInterrupt(t *testing.T) {
	srv := newBackend(t, models.InstallationStatus{Status: "running", Progress: 10, Message: "downloading"})

	app, err := NewApp(headlessConfig(srv.URL, "1.20.1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT)
	defer stop()

	time.AfterFunc(100*time.Millisecond, func() {
		_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
	})

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, app.services.Tracker.Active())
}

func TestApp_Headless_InterruptBeforeAccepted(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/setup", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	app, err := NewApp(headlessConfig(srv.URL, "1.20.1"), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	require.NoError(t, app.Run(ctx))
	assert.Empty(t, app.services.Tracker.Active())
}

type stubUI struct {
	ran bool
}

func (s *stubUI) Run(context.Context) error {
	s.ran = true
	return nil
}

func TestApp_Interactive_RunsUI(t *testing.T) {
	app, err := NewApp(headlessConfig("http://127.0.0.1:5000", ""), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	ui := &stubUI{}
	app.ui = ui

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, ui.ran)
}
