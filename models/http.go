package models

// Envelope status values used by every launcher backend response.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope shared by every launcher backend response.
type APIResponse struct {
	// Status is either [StatusSuccess] or [StatusError].
	Status string `json:"status"`

	// Message is a human-readable outcome. Always present on errors.
	Message string `json:"message,omitempty"`
}

// IsError reports whether the backend marked the response as failed.
func (r APIResponse) IsError() bool {
	return r.Status == StatusError
}

// SetupRequest asks the backend to provision a Fabric environment.
// Target and MCVersion carry the same value: newer backends read "target",
// the original launcher backend reads "mc_version".
type SetupRequest struct {
	Target    string `json:"target"`
	MCVersion string `json:"mc_version"`
}

// SetupResponse acknowledges a setup request. The job itself runs in the
// background on the server.
type SetupResponse struct {
	APIResponse
	MCVersion string `json:"mc_version,omitempty"`
}

// InstallationStatus is the progress record of a running or finished job.
type InstallationStatus struct {
	Status     string `json:"status"`
	Progress   int    `json:"progress"`
	Message    string `json:"message"`
	InstallDir string `json:"install_dir,omitempty"`
}

// StatusResponse is returned by GET /status/{target}. While a job is known to
// the backend InstallationStatus is set; otherwise the install flags describe
// what is on disk.
type StatusResponse struct {
	APIResponse
	MCVersion          string              `json:"mc_version,omitempty"`
	InstallationStatus *InstallationStatus `json:"installation_status,omitempty"`
	Installed          bool                `json:"installed,omitempty"`
	FabricInstalled    bool                `json:"fabric_installed,omitempty"`
	FabricAPIInstalled bool                `json:"fabric_api_installed,omitempty"`
	AIModInstalled     bool                `json:"ai_mod_installed,omitempty"`
}

// GameVersion is one selectable Minecraft version.
type GameVersion struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Stable bool   `json:"stable"`
}

// VersionsResponse is returned by GET /versions.
type VersionsResponse struct {
	APIResponse
	Versions []GameVersion `json:"versions"`
}

// InstallModRequest asks the backend to copy the AI Builder mod into the
// mods directory of an already provisioned version.
type InstallModRequest struct {
	MCVersion    string `json:"mc_version"`
	InstallAIMod bool   `json:"install_ai_mod"`
}

// InstallModResponse is returned by POST /install-mod.
type InstallModResponse struct {
	APIResponse
	ModPath string `json:"mod_path,omitempty"`
}

// LaunchRequest asks for launch instructions of a provisioned version.
type LaunchRequest struct {
	MCVersion string `json:"mc_version"`
}

// LaunchResponse is returned by POST /launch.
type LaunchResponse struct {
	APIResponse
	LaunchInstructions string `json:"launch_instructions,omitempty"`
}
