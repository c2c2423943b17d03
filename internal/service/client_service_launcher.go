package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fabric-launcher/internal/adapter"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/models"
)

// MaxVersions caps the version list offered to the user.
const MaxVersions = 20

type launcherService struct {
	adapter adapter.LauncherAdapter
	logger  *logger.Logger
}

// NewLauncherService creates a LauncherService on top of launcherAdapter.
func NewLauncherService(launcherAdapter adapter.LauncherAdapter, log *logger.Logger) LauncherService {
	return &launcherService{
		adapter: launcherAdapter,
		logger:  log.WithComponent("launcher"),
	}
}

// Versions implements [LauncherService].
func (s *launcherService) Versions(ctx context.Context) ([]models.GameVersion, error) {
	resp, err := s.adapter.Versions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	versions := resp.Versions
	if len(versions) > MaxVersions {
		versions = versions[:MaxVersions]
	}

	s.logger.Debug().Int("count", len(versions)).Msg("versions fetched")
	return versions, nil
}

// Inspect implements [LauncherService].
func (s *launcherService) Inspect(ctx context.Context, version string) (models.InstallationReport, error) {
	id, err := DeriveOperationID(models.SetupParams{GameVersion: version})
	if err != nil {
		return models.InstallationReport{}, err
	}

	resp, err := s.adapter.Status(ctx, id.String())
	if err != nil {
		return models.InstallationReport{}, fmt.Errorf("inspect %s: %w", id, err)
	}

	report := models.InstallationReport{
		GameVersion:        id.String(),
		Installed:          resp.Installed,
		FabricInstalled:    resp.FabricInstalled,
		FabricAPIInstalled: resp.FabricAPIInstalled,
		AIModInstalled:     resp.AIModInstalled,
	}
	if resp.InstallationStatus != nil {
		report.Snapshot = models.NewStatusSnapshot(*resp.InstallationStatus)
		report.Running = !report.Snapshot.Phase.IsTerminal()
	}

	return report, nil
}

// InstallMod implements [LauncherService].
func (s *launcherService) InstallMod(ctx context.Context, version string, withAIMod bool) (models.InstallModResponse, error) {
	id, err := DeriveOperationID(models.SetupParams{GameVersion: version})
	if err != nil {
		return models.InstallModResponse{}, err
	}

	resp, err := s.adapter.InstallMod(ctx, models.InstallModRequest{MCVersion: id.String(), InstallAIMod: withAIMod})
	if err != nil {
		return models.InstallModResponse{}, fmt.Errorf("install mod into %s: %w", id, err)
	}

	s.logger.Info().Str("version", id.String()).Str("mod_path", resp.ModPath).Msg("mod installed")
	return resp, nil
}

// Launch implements [LauncherService].
func (s *launcherService) Launch(ctx context.Context, version string) (string, error) {
	id, err := DeriveOperationID(models.SetupParams{GameVersion: version})
	if err != nil {
		return "", err
	}

	resp, err := s.adapter.Launch(ctx, models.LaunchRequest{MCVersion: id.String()})
	if err != nil {
		return "", fmt.Errorf("launch %s: %w", id, err)
	}

	return resp.LaunchInstructions, nil
}
