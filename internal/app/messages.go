// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// launcher services and the UI sinks.
//
// All Msg* constants are human-readable lines reported through the event
// sink. Format verbs are documented per constant. Keeping them in one place
// ensures consistent wording across the TUI and the headless log.
package app

const (
	// MsgSetupRequested is reported before the start request is sent.
	// %s: game version.
	MsgSetupRequested = "setting up Fabric environment for Minecraft %s..."

	// MsgSetupAccepted is used when the backend accepts a setup without a
	// message of its own. %s: game version.
	MsgSetupAccepted = "setup of Minecraft %s accepted, waiting for progress"

	// MsgSetupCompleted is the default completion line.
	// %s: game version.
	MsgSetupCompleted = "Minecraft %s Fabric environment is ready"

	// MsgSetupFailed prefixes a failed setup. %s: game version, %s: reason.
	MsgSetupFailed = "setup of Minecraft %s failed: %s"

	// MsgSetupInterrupted is reported when the caller gave up on the start
	// request before the backend answered. %s: game version.
	MsgSetupInterrupted = "setup request for Minecraft %s was interrupted"

	// MsgSetupBusy is reported when a setup for the version is already
	// being tracked. %s: game version.
	MsgSetupBusy = "setup of Minecraft %s is already in progress, cancel it first"

	// MsgSetupCancelled is reported on explicit cancellation.
	// %s: game version.
	MsgSetupCancelled = "stopped tracking setup of Minecraft %s"

	// MsgSetupTimedOut is reported when the maximum poll duration elapsed.
	// %s: game version, %s: duration.
	MsgSetupTimedOut = "setup of Minecraft %s did not finish within %s"

	// MsgPollFailed is reported when one status query fails; polling
	// continues. %s: game version, %s: reason.
	MsgPollFailed = "status check for Minecraft %s failed: %s (will retry)"

	// MsgUnknownPhase is reported for a status value the client does not
	// understand; polling continues. %s: game version, %q: raw status.
	MsgUnknownPhase = "unrecognised status %[2]q for Minecraft %[1]s, still waiting"

	// MsgInvalidTarget is reported when a setup is requested for an
	// unusable version string. %s: reason.
	MsgInvalidTarget = "cannot start setup: %s"

	// MsgTrackerClosed is reported when a setup is requested during
	// shutdown.
	MsgTrackerClosed = "cannot start setup: launcher is shutting down"

	// MsgServerUnreachable describes a request that got no response.
	MsgServerUnreachable = "launcher server is unreachable"

	// MsgMalformedResponse describes a response the client cannot read.
	MsgMalformedResponse = "launcher server sent an unexpected response"
)
