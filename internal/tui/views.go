package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// wideLayout is the minimum width at which the coach docks beside the
// main area instead of replacing it.
const wideLayout = 100

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.surface.Snapshot()

	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.theme.Title.Render("♻️  EcoScan"),
			"  ",
			m.statsPanel.Bar(v.StatsBar),
		),
		m.renderTabs(v.ActiveTab),
	)

	main := m.renderBody(v)
	if v.Coach.Open {
		overlay := m.coachPanel.View(v.Coach, m.chatInput.View(), m.spinner.View())
		if m.width >= wideLayout {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, " ", overlay)
		} else {
			main = overlay
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", main, "", m.renderFooter(v))
}

func (m Model) renderTabs(active viewmodel.Tab) string {
	tabs := make([]string, 0, len(viewmodel.Tabs()))
	for i, tab := range viewmodel.Tabs() {
		label := string(rune('1'+i)) + " " + tab.String()
		if tab == active {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody(v viewmodel.AppView) string {
	switch v.ActiveTab {
	case viewmodel.TabStats:
		return m.statsPanel.View(v.StatsDetail)
	case viewmodel.TabHistory:
		return m.historyPanel.View(v.History)
	case viewmodel.TabAchievements:
		return m.achievementsPanel.View(v.Achievements)
	case viewmodel.TabScan:
	}

	body := m.scanPanel.View(v.Scan, m.spinner.View())
	if m.focus == focusPath {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.pathInput.View())
	}
	return body
}

func (m Model) renderFooter(v viewmodel.AppView) string {
	var lines []string

	if v.StatusMessage != "" {
		lines = append(lines, m.theme.StatusWarning.Render(v.StatusMessage))
	}
	if v.Coach.LauncherVisible {
		lines = append(lines, m.coachPanel.Launcher())
	}

	var keys help.KeyMap = m.keymap
	if v.Coach.Open {
		keys = coachKeyMap{m.keymap}
	}
	lines = append(lines, m.help.View(keys))

	return strings.Join(lines, "\n")
}
