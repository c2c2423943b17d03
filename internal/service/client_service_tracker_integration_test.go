// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/utils"
	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/go-chi/chi/v5"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend serves a scripted sequence of installation statuses per
// version. The last entry repeats once the script is exhausted.
type fakeBackend struct {
	mu       sync.Mutex
	scripts  map[string][]models.InstallationStatus
	setups   []models.SetupRequest
	statuses map[string]int
}

func newFakeBackend(t *testing.T, scripts map[string][]models.InstallationStatus) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{scripts: scripts, statuses: make(map[string]int)}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/setup", b.setup)
		r.Get("/status/{mc_version}", b.status)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *fakeBackend) setup(w http.ResponseWriter, r *http.Request) {
	var req models.SetupRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		_, _ = utils.WriteJSON(w, models.APIResponse{Status: models.StatusError, Message: "bad json"}, http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.setups = append(b.setups, req)
	_, known := b.scripts[req.MCVersion]
	b.mu.Unlock()

	if !known {
		_, _ = utils.WriteJSON(w, models.APIResponse{Status: models.StatusError, Message: "Invalid Minecraft version"}, http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, models.SetupResponse{
		APIResponse: models.APIResponse{Status: models.StatusSuccess, Message: "Setting up Minecraft " + req.MCVersion},
		MCVersion:   req.MCVersion,
	}, http.StatusOK)
}

func (b *fakeBackend) status(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "mc_version")

	b.mu.Lock()
	script := b.scripts[version]
	i := min(b.statuses[version], len(script)-1)
	b.statuses[version]++
	b.mu.Unlock()

	resp := models.StatusResponse{
		APIResponse: models.APIResponse{Status: models.StatusSuccess},
		MCVersion:   version,
	}
	if i >= 0 {
		st := script[i]
		resp.InstallationStatus = &st
	}
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func newIntegrationTracker(t *testing.T, serverURL string) (SetupTracker, *recordingSink, *testclock.Clock) {
	t.Helper()
	launcherAdapter, err := adapter.NewHTTPLauncherAdapter(config.LauncherAdapter{
		BaseURL:        serverURL,
		APIPrefix:      "/api",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	sink := newRecordingSink()
	clk := testclock.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	tracker := NewSetupTracker(launcherAdapter, sink, config.LauncherTracker{PollInterval: time.Second}, clk, logger.Nop())
	t.Cleanup(tracker.Close)

	return tracker, sink, clk
}

func TestSetupTracker_HTTP_SetupToCompletion(t *testing.T) {
	backend, srv := newFakeBackend(t, map[string][]models.InstallationStatus{
		"1.20.1": {
			{Status: "running", Progress: 10, Message: "downloading"},
			{Status: "success", Progress: 100, Message: "done", InstallDir: "/srv/mc/1.20.1"},
		},
	})
	tracker, sink, clk := newIntegrationTracker(t, srv.URL)

	id, err := tracker.Start(context.Background(), models.SetupParams{GameVersion: "1.20.1"})
	require.NoError(t, err)
	assert.Equal(t, sinkEvent{kind: "info", text: "Setting up Minecraft 1.20.1"}, sink.next(t))

	advance(t, clk, 1)
	assert.Equal(t, sinkEvent{kind: "progress", id: id, percent: 10, text: "downloading"}, sink.next(t))

	advance(t, clk, 1)
	assert.Equal(t, sinkEvent{kind: "progress", id: id, percent: 100, text: "done"}, sink.next(t))
	e := sink.next(t)
	assert.Equal(t, "completed", e.kind)
	assert.Contains(t, e.text, "/srv/mc/1.20.1")

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, []models.SetupRequest{{Target: "1.20.1", MCVersion: "1.20.1"}}, backend.setups)
	assert.Equal(t, 2, backend.statuses["1.20.1"])
}

func TestSetupTracker_HTTP_RejectedVersion(t *testing.T) {
	_, srv := newFakeBackend(t, map[string][]models.InstallationStatus{})
	tracker, sink, _ := newIntegrationTracker(t, srv.URL)

	_, err := tracker.Start(context.Background(), models.SetupParams{GameVersion: "0.0.1"})
	require.ErrorIs(t, err, adapter.ErrBackendReported)

	e := sink.next(t)
	assert.Equal(t, "failed", e.kind)
	assert.Contains(t, e.text, "Invalid Minecraft version")
	assert.Empty(t, tracker.Active())
}

func TestSetupTracker_HTTP_BackendGoesAway(t *testing.T) {
	_, srv := newFakeBackend(t, map[string][]models.InstallationStatus{
		"1.20.1": {{Status: "running", Progress: 5, Message: "queued"}},
	})
	tracker, sink, clk := newIntegrationTracker(t, srv.URL)

	id, err := tracker.Start(context.Background(), models.SetupParams{GameVersion: "1.20.1"})
	require.NoError(t, err)
	sink.next(t)

	srv.Close()

	advance(t, clk, 1)
	e := sink.next(t)
	assert.Equal(t, "info", e.kind)
	assert.True(t, tracker.IsTracking(id), "polling continues after a transport error")

	require.True(t, tracker.Cancel(id))
	assert.Equal(t, "cancelled", sink.next(t).kind)
}
