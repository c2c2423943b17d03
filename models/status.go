// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// OperationID identifies one tracked setup operation. It is derived from the
// caller-supplied parameters and stays stable for the lifetime of the
// operation, so it is the only key the tracker uses to tell operations apart.
type OperationID string

// String returns the identity as a plain string.
func (id OperationID) String() string {
	return string(id)
}

// Phase is the lifecycle stage reported by the backend for a setup operation.
type Phase int

const (
	// PhaseUnknown is assigned to any status value the client does not
	// recognise. It is never terminal.
	PhaseUnknown Phase = iota

	// PhasePending means the backend accepted the job but has not started it.
	PhasePending

	// PhaseRunning means the backend is working on the job.
	PhaseRunning

	// PhaseSuccess is terminal: the environment is ready.
	PhaseSuccess

	// PhaseFailed is terminal: the backend gave up on the job.
	PhaseFailed
)

// ParsePhase maps the raw installation_status.status value to a [Phase].
// Matching is case-insensitive. The backend reports "installing" while the
// job runs, newer builds report "running"; both map to [PhaseRunning].
func ParsePhase(raw string) Phase {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "queued":
		return PhasePending
	case "running", "installing":
		return PhaseRunning
	case "success":
		return PhaseSuccess
	case "error", "failed":
		return PhaseFailed
	default:
		return PhaseUnknown
	}
}

// IsTerminal reports whether no further polling is needed after p.
func (p Phase) IsTerminal() bool {
	return p == PhaseSuccess || p == PhaseFailed
}

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseRunning:
		return "running"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StatusSnapshot is the immutable result of one status poll.
type StatusSnapshot struct {
	// Phase is the parsed lifecycle stage.
	Phase Phase

	// RawPhase keeps the value exactly as the backend sent it, for logging
	// phases the client does not understand.
	RawPhase string

	// Progress is the backend-reported completion percentage. It is not
	// guaranteed to be within [0,100] or monotonic; use [StatusSnapshot.Percent]
	// for display.
	Progress int

	// Message is the human-readable description of the current step.
	Message string

	// InstallDir is set by the backend once the setup has succeeded.
	InstallDir string
}

// Percent returns Progress clamped to [0,100].
func (s StatusSnapshot) Percent() int {
	switch {
	case s.Progress < 0:
		return 0
	case s.Progress > 100:
		return 100
	default:
		return s.Progress
	}
}

// NewStatusSnapshot builds a snapshot from the wire representation.
func NewStatusSnapshot(st InstallationStatus) StatusSnapshot {
	return StatusSnapshot{
		Phase:      ParsePhase(st.Status),
		RawPhase:   st.Status,
		Progress:   st.Progress,
		Message:    st.Message,
		InstallDir: st.InstallDir,
	}
}

// SetupParams are the caller-supplied parameters of a setup operation.
type SetupParams struct {
	// GameVersion is the Minecraft version to provision, e.g. "1.20.1".
	GameVersion string
}

// InstallationReport describes what is already installed for a game version.
type InstallationReport struct {
	GameVersion        string
	Installed          bool
	FabricInstalled    bool
	FabricAPIInstalled bool
	AIModInstalled     bool

	// Running is set when a setup job is still known to the backend; in that
	// case Snapshot carries its last state and the flags above are empty.
	Running  bool
	Snapshot StatusSnapshot
}
