package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/fabric-launcher/models"
)

const visibleLogLines = 8

func (m launcherModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	title := "FABRIC LAUNCHER"
	if m.loading || m.hasActiveOperations() {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	b.WriteString(m.viewVersions())
	b.WriteString("\n")
	b.WriteString("AI Builder mod: " + onOff(m.withAIMod) + "\n")

	if m.report != nil {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(viewReport(*m.report)))
		b.WriteString("\n")
	}
	if m.instructions != "" {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render("Launch instructions\n\n" + m.instructions))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewLog())

	hotKeys := "s: setup  x: cancel  i: inspect  m: install mod  a: toggle AI mod  l: launch  c: copy  r: reload  v: about"
	return appStyle.Render(renderPage(title, b.String(), hotKeys))
}

func (m launcherModel) viewVersions() string {
	if m.loading && len(m.versions) == 0 {
		return "Loading versions...\n"
	}
	if len(m.versions) == 0 {
		return "No versions available, press r to reload\n"
	}

	var b strings.Builder
	for i, v := range m.versions {
		cursor := "  "
		name := v.ID
		if v.Name != "" && v.Name != v.ID {
			name = v.Name
		}
		if !v.Stable {
			name += " (snapshot)"
		}
		if i == m.idx {
			cursor = "> "
			name = selectedStyle.Render(name)
		}

		b.WriteString(cursor)
		b.WriteString(name)
		if op, ok := m.operations[models.OperationID(v.ID)]; ok {
			b.WriteString("  ")
			b.WriteString(m.viewOperation(op))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m launcherModel) viewOperation(op operationView) string {
	switch {
	case op.failed:
		return errorStyle.Render("failed")
	case op.done:
		return successStyle.Render("ready")
	}
	return fmt.Sprintf("%s %s %s", m.progress.ViewAs(float64(op.percent)/100), percentLabel(op.percent), fitText(op.text, 40))
}

func viewReport(r models.InstallationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Minecraft %s\n\n", r.GameVersion)
	if r.Running {
		fmt.Fprintf(&b, "Setup in progress: %s %s\n", percentLabel(r.Snapshot.Percent()), r.Snapshot.Message)
		return b.String()
	}
	fmt.Fprintf(&b, "Installed:        %s\n", yesNo(r.Installed))
	fmt.Fprintf(&b, "Fabric loader:    %s\n", yesNo(r.FabricInstalled))
	fmt.Fprintf(&b, "Fabric API:       %s\n", yesNo(r.FabricAPIInstalled))
	fmt.Fprintf(&b, "AI Builder mod:   %s", yesNo(r.AIModInstalled))
	return b.String()
}

func (m launcherModel) viewLog() string {
	lines := m.log
	if len(lines) > visibleLogLines {
		lines = lines[len(lines)-visibleLogLines:]
	}

	var b strings.Builder
	for _, l := range lines {
		text := l.at.Format("15:04:05") + "  " + l.text
		switch l.level {
		case levelSuccess:
			text = successStyle.Render(text)
		case levelError:
			text = errorStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}
