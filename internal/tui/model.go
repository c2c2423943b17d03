package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fabric-launcher/internal/app"
	"github.com/MKhiriev/fabric-launcher/internal/service"
	"github.com/MKhiriev/fabric-launcher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxLogLines = 200

type logLevel int

const (
	levelInfo logLevel = iota
	levelSuccess
	levelError
)

type logLine struct {
	level logLevel
	at    time.Time
	text  string
}

// operationView is what the list shows for one tracked setup. Finished
// operations stay in the map so the last outcome remains visible.
type operationView struct {
	percent int
	text    string
	done    bool
	failed  bool
}

type launcherModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	versions  []models.GameVersion
	idx       int
	loading   bool
	withAIMod bool

	operations   map[models.OperationID]operationView
	report       *models.InstallationReport
	instructions string
	log          []logLine

	spinner  spinner.Model
	progress progress.Model

	showBuildInfo bool

	// copyToClipboard is swapped out in tests.
	copyToClipboard func(string) error
	now             func() time.Time
}

func newLauncherModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) launcherModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return launcherModel{
		ctx:             ctx,
		services:        services,
		buildInfo:       buildInfo,
		loading:         true,
		operations:      make(map[models.OperationID]operationView),
		spinner:         s,
		progress:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
	}
}

func (m launcherModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadVersions(), m.spinner.Tick)
}

func (m launcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-40, 10), 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case versionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.appendLog(levelError, "cannot load versions: "+humanizeError(msg.err))
			return m, nil
		}
		m.versions = msg.versions
		if m.idx >= len(m.versions) {
			m.idx = max(len(m.versions)-1, 0)
		}
		m.appendLog(levelInfo, fmt.Sprintf("%d versions available", len(m.versions)))
		return m, nil

	case setupStartedMsg:
		// failures were already reported through the sink
		if msg.err == nil {
			if _, ok := m.operations[msg.id]; !ok {
				m.operations[msg.id] = operationView{text: "waiting for progress"}
			}
		}
		return m, nil

	case cancelDoneMsg:
		if !msg.ok {
			m.appendLog(levelInfo, fmt.Sprintf("no setup of Minecraft %s is being tracked", msg.version))
		}
		return m, nil

	case infoMsg:
		m.appendLog(levelInfo, msg.text)
		return m, nil

	case progressMsg:
		prev := m.operations[msg.id]
		m.operations[msg.id] = operationView{percent: msg.percent, text: msg.text}
		if msg.text != "" && msg.text != prev.text {
			m.appendLog(levelInfo, fmt.Sprintf("[%s] %s %s", msg.id, percentLabel(msg.percent), msg.text))
		}
		return m, nil

	case completedMsg:
		m.operations[msg.id] = operationView{percent: 100, text: msg.text, done: true}
		m.appendLog(levelSuccess, msg.text)
		return m, nil

	case failedMsg:
		prev := m.operations[msg.id]
		m.operations[msg.id] = operationView{percent: prev.percent, text: msg.text, done: true, failed: true}
		m.appendLog(levelError, msg.text)
		return m, nil

	case cancelledMsg:
		delete(m.operations, msg.id)
		m.appendLog(levelInfo, msg.text)
		return m, nil

	case reportLoadedMsg:
		if msg.err != nil {
			m.appendLog(levelError, "cannot check installation: "+humanizeError(msg.err))
			return m, nil
		}
		report := msg.report
		m.report = &report
		return m, nil

	case modInstalledMsg:
		if msg.err != nil {
			m.appendLog(levelError, "cannot install mod: "+humanizeError(msg.err))
			return m, nil
		}
		text := msg.resp.Message
		if msg.resp.ModPath != "" {
			text += " (" + msg.resp.ModPath + ")"
		}
		m.appendLog(levelSuccess, text)
		return m, nil

	case launchLoadedMsg:
		if msg.err != nil {
			m.appendLog(levelError, "cannot launch: "+humanizeError(msg.err))
			return m, nil
		}
		m.instructions = msg.instructions
		m.appendLog(levelSuccess, fmt.Sprintf("launch instructions for Minecraft %s ready, press c to copy", msg.version))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.appendLog(levelError, "cannot copy to clipboard: "+msg.err.Error())
			return m, nil
		}
		m.appendLog(levelInfo, "launch instructions copied to clipboard")
		return m, nil
	}

	return m, nil
}

func (m launcherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.idx < len(m.versions)-1 {
			m.idx++
		}
		return m, nil

	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadVersions()

	case key.Matches(msg, keys.clearLog):
		m.log = nil
		return m, nil

	case key.Matches(msg, keys.toggleAI):
		m.withAIMod = !m.withAIMod
		m.appendLog(levelInfo, "AI Builder mod "+onOff(m.withAIMod))
		return m, nil

	case key.Matches(msg, keys.esc):
		m.report = nil
		m.instructions = ""
		return m, nil

	case key.Matches(msg, keys.copy):
		if m.instructions == "" {
			m.appendLog(levelInfo, "nothing to copy, press l to fetch launch instructions first")
			return m, nil
		}
		return m, m.cmdCopy(m.instructions)
	}

	version, ok := m.selectedVersion()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.setup):
		m.appendLog(levelInfo, fmt.Sprintf(app.MsgSetupRequested, version))
		return m, m.cmdStartSetup(version)
	case key.Matches(msg, keys.cancel):
		return m, m.cmdCancel(version)
	case key.Matches(msg, keys.inspect):
		return m, m.cmdInspect(version)
	case key.Matches(msg, keys.installMod):
		return m, m.cmdInstallMod(version, m.withAIMod)
	case key.Matches(msg, keys.launch):
		return m, m.cmdLaunch(version)
	}

	return m, nil
}

func (m launcherModel) selectedVersion() (string, bool) {
	if len(m.versions) == 0 || m.idx < 0 || m.idx >= len(m.versions) {
		return "", false
	}
	return m.versions[m.idx].ID, true
}

func (m *launcherModel) appendLog(level logLevel, text string) {
	m.log = append(m.log, logLine{level: level, at: m.now(), text: text})
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m launcherModel) hasActiveOperations() bool {
	for _, op := range m.operations {
		if !op.done {
			return true
		}
	}
	return false
}

// Tracker calls run inside commands, never in Update, because the tracker
// reports back through the program while holding its lock.

func (m launcherModel) cmdLoadVersions() tea.Cmd {
	ctx, launcher := m.ctx, m.services.Launcher
	return func() tea.Msg {
		versions, err := launcher.Versions(ctx)
		return versionsLoadedMsg{versions: versions, err: err}
	}
}

func (m launcherModel) cmdStartSetup(version string) tea.Cmd {
	ctx, tracker := m.ctx, m.services.Tracker
	return func() tea.Msg {
		id, err := tracker.Start(ctx, models.SetupParams{GameVersion: version})
		return setupStartedMsg{id: id, err: err}
	}
}

func (m launcherModel) cmdCancel(version string) tea.Cmd {
	tracker := m.services.Tracker
	return func() tea.Msg {
		id, err := service.DeriveOperationID(models.SetupParams{GameVersion: version})
		if err != nil {
			return cancelDoneMsg{version: version}
		}
		return cancelDoneMsg{version: version, ok: tracker.Cancel(id)}
	}
}

func (m launcherModel) cmdInspect(version string) tea.Cmd {
	ctx, launcher := m.ctx, m.services.Launcher
	return func() tea.Msg {
		report, err := launcher.Inspect(ctx, version)
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m launcherModel) cmdInstallMod(version string, withAIMod bool) tea.Cmd {
	ctx, launcher := m.ctx, m.services.Launcher
	return func() tea.Msg {
		resp, err := launcher.InstallMod(ctx, version, withAIMod)
		return modInstalledMsg{resp: resp, err: err}
	}
}

func (m launcherModel) cmdLaunch(version string) tea.Cmd {
	ctx, launcher := m.ctx, m.services.Launcher
	return func() tea.Msg {
		instructions, err := launcher.Launch(ctx, version)
		return launchLoadedMsg{version: version, instructions: instructions, err: err}
	}
}

func (m launcherModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
