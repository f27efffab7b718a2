package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// opContext derives the context for one background operation.
func (m Model) opContext() (context.Context, context.CancelFunc) {
	if m.config.RequestTimeout > 0 {
		return context.WithTimeout(m.ctx, m.config.RequestTimeout)
	}
	return context.WithCancel(m.ctx)
}

// startCmd loads the stats bar, history and achievements.
func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		return opDoneMsg{kind: opStart, err: m.app.Start(ctx)}
	}
}

// selectPathCmd opens and previews the image at path.
func (m Model) selectPathCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{kind: opSelect, err: m.app.Scan.SelectPath(path)}
	}
}

// classifyCmd submits the held image.
func (m Model) classifyCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		return opDoneMsg{kind: opClassify, err: m.app.Scan.Classify(ctx)}
	}
}

// activateTabCmd refreshes the data behind tab.
func (m Model) activateTabCmd(tab viewmodel.Tab) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		return tabActivatedMsg{tab: tab, err: m.app.Scan.ActivateTab(ctx, tab)}
	}
}

// quickActionCmd resolves a coach quick action.
func (m Model) quickActionCmd(action coach.QuickAction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		return opDoneMsg{kind: opQuickAction, err: m.app.Coach.HandleQuickAction(ctx, action)}
	}
}

// sendChatCmd forwards free text to the coach.
func (m Model) sendChatCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		m.app.Coach.Send(ctx, text)
		return opDoneMsg{kind: opChat}
	}
}
