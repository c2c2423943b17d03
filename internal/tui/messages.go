package tui

import "github.com/MKhiriev/fabric-launcher/models"

type versionsLoadedMsg struct {
	versions []models.GameVersion
	err      error
}

type setupStartedMsg struct {
	id  models.OperationID
	err error
}

type cancelDoneMsg struct {
	version string
	ok      bool
}

type reportLoadedMsg struct {
	report models.InstallationReport
	err    error
}

type modInstalledMsg struct {
	resp models.InstallModResponse
	err  error
}

type launchLoadedMsg struct {
	version      string
	instructions string
	err          error
}

type copiedMsg struct {
	err error
}

// Messages below are produced by programSink on behalf of the tracker.

type infoMsg struct {
	text string
}

type progressMsg struct {
	id      models.OperationID
	percent int
	text    string
}

type completedMsg struct {
	id   models.OperationID
	text string
}

type failedMsg struct {
	id   models.OperationID
	text string
}

type cancelledMsg struct {
	id   models.OperationID
	text string
}
