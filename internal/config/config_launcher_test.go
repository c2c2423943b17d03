// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLauncherConfig_Defaults(t *testing.T) {
	cfg, err := GetLauncherConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000", cfg.Adapter.BaseURL)
	assert.Equal(t, "/api", cfg.Adapter.APIPrefix)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Tracker.PollInterval)
	assert.False(t, cfg.Headless())
}

func TestGetLauncherConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://from-env:5000/")

	cfg, err := GetLauncherConfig([]string{"-a", "http://from-flag:5000", "-target", "1.20.1"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:5000", cfg.Adapter.BaseURL)
	assert.Equal(t, "1.20.1", cfg.App.SetupTarget)
	assert.True(t, cfg.Headless())
}

func TestGetLauncherConfig_InvalidFlag(t *testing.T) {
	_, err := GetLauncherConfig([]string{"-poll-interval", "soon"})
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "127.0.0.1:5000", want: "http://127.0.0.1:5000"},
		{name: "keeps https", raw: "https://launcher.example.com/", want: "https://launcher.example.com"},
		{name: "trims spaces", raw: "  localhost:5000  ", want: "http://localhost:5000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAPIPrefix(t *testing.T) {
	assert.Equal(t, "/api", NormalizeAPIPrefix("api"))
	assert.Equal(t, "/api", NormalizeAPIPrefix("/api/"))
	assert.Equal(t, "/api/v1", NormalizeAPIPrefix(" /api/v1 "))
	assert.Equal(t, "", NormalizeAPIPrefix("/"))
	assert.Equal(t, "", NormalizeAPIPrefix(""))
}
