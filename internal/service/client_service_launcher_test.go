package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/internal/mock"
	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLauncherSvc(t *testing.T) (LauncherService, *mock.MockLauncherAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockLauncherAdapter(ctrl)
	return NewLauncherService(mockAdapter, logger.Nop()), mockAdapter
}

func TestLauncherService_Versions_CapsList(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	versions := make([]models.GameVersion, 0, 30)
	for i := range 30 {
		versions = append(versions, models.GameVersion{ID: fmt.Sprintf("1.%d", i), Stable: true})
	}
	mockAdapter.EXPECT().Versions(gomock.Any()).Return(models.VersionsResponse{Versions: versions}, nil)

	got, err := svc.Versions(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, MaxVersions)
	assert.Equal(t, "1.0", got[0].ID)
}

func TestLauncherService_Versions_Error(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	mockAdapter.EXPECT().Versions(gomock.Any()).Return(models.VersionsResponse{}, adapter.ErrNetwork)

	_, err := svc.Versions(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNetwork)
}

func TestLauncherService_Inspect_Installed(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	mockAdapter.EXPECT().Status(gomock.Any(), "1.20.1").Return(models.StatusResponse{
		Installed:          true,
		FabricInstalled:    true,
		FabricAPIInstalled: true,
	}, nil)

	report, err := svc.Inspect(context.Background(), " 1.20.1")
	require.NoError(t, err)
	assert.Equal(t, models.InstallationReport{
		GameVersion:        "1.20.1",
		Installed:          true,
		FabricInstalled:    true,
		FabricAPIInstalled: true,
	}, report)
}

func TestLauncherService_Inspect_RunningJob(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	mockAdapter.EXPECT().Status(gomock.Any(), "1.20.1").Return(statusOf("running", 60, "installing"), nil)

	report, err := svc.Inspect(context.Background(), "1.20.1")
	require.NoError(t, err)
	assert.True(t, report.Running)
	assert.Equal(t, models.PhaseRunning, report.Snapshot.Phase)
	assert.Equal(t, 60, report.Snapshot.Percent())
}

func TestLauncherService_Inspect_EmptyVersion(t *testing.T) {
	svc, _ := newTestLauncherSvc(t)

	_, err := svc.Inspect(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyTarget)
}

func TestLauncherService_InstallMod(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	mockAdapter.EXPECT().
		InstallMod(gomock.Any(), models.InstallModRequest{MCVersion: "1.20.1", InstallAIMod: true}).
		Return(models.InstallModResponse{APIResponse: models.APIResponse{Message: "installed"}, ModPath: "/mods/ai.jar"}, nil)

	resp, err := svc.InstallMod(context.Background(), "1.20.1", true)
	require.NoError(t, err)
	assert.Equal(t, "/mods/ai.jar", resp.ModPath)
}

func TestLauncherService_InstallMod_BackendError(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	mockAdapter.EXPECT().InstallMod(gomock.Any(), gomock.Any()).
		Return(models.InstallModResponse{}, &adapter.BackendError{StatusCode: 400, Message: "Minecraft 1.20.1 is not installed"})

	_, err := svc.InstallMod(context.Background(), "1.20.1", false)
	require.ErrorIs(t, err, adapter.ErrBackendReported)
	assert.Equal(t, "Minecraft 1.20.1 is not installed", describeError(err))
}

func TestLauncherService_Launch(t *testing.T) {
	svc, mockAdapter := newTestLauncherSvc(t)

	mockAdapter.EXPECT().Launch(gomock.Any(), models.LaunchRequest{MCVersion: "1.20.1"}).
		Return(models.LaunchResponse{LaunchInstructions: "open the launcher and pick fabric-loader-1.20.1"}, nil)

	got, err := svc.Launch(context.Background(), "1.20.1")
	require.NoError(t, err)
	assert.Equal(t, "open the launcher and pick fabric-loader-1.20.1", got)
}

func TestLauncherService_Launch_InvalidVersion(t *testing.T) {
	svc, _ := newTestLauncherSvc(t)

	_, err := svc.Launch(context.Background(), "../1.20.1")
	assert.ErrorIs(t, err, ErrInvalidTarget)
}
