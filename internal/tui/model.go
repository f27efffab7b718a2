package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/ecoscan/internal/app"
	"github.com/Veraticus/ecoscan/internal/coach"
	"github.com/Veraticus/ecoscan/internal/common"
	"github.com/Veraticus/ecoscan/internal/tui/components"
	"github.com/Veraticus/ecoscan/internal/tui/themes"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// focus is the widget receiving typed text.
type focus int

const (
	focusNone focus = iota
	focusPath
	focusChat
)

// Model holds the main TUI state. Domain state lives in the surface; the
// model only owns input widgets and layout.
type Model struct {
	ctx               context.Context
	app               *app.App
	surface           *Surface
	recorder          *Recorder
	theme             themes.Theme
	config            Config
	help              help.Model
	spinner           spinner.Model
	pathInput         textinput.Model
	chatInput         textinput.Model
	keymap            KeyMap
	scanPanel         components.ScanPanel
	statsPanel        components.StatsPanel
	historyPanel      components.HistoryPanel
	achievementsPanel components.AchievementsPanel
	coachPanel        components.CoachPanel
	focus             focus
	width             int
	height            int
	quitting          bool
}

// newModel creates a model bound to a and the surface it renders into.
func newModel(ctx context.Context, a *app.App, surface *Surface, cfg Config) Model {
	path := textinput.New()
	path.Prompt = "📂 "
	path.Placeholder = "path to an image, e.g. ~/Pictures/bottle.jpg"
	path.CharLimit = 4096
	path.Cursor.SetMode(cursor.CursorStatic)

	chat := textinput.New()
	chat.Prompt = "› "
	chat.Placeholder = "Ask about recycling..."
	chat.CharLimit = 1000
	chat.Cursor.SetMode(cursor.CursorStatic)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = cfg.Theme.StatusInfo

	m := Model{
		ctx:               ctx,
		app:               a,
		surface:           surface,
		recorder:          cfg.Recorder,
		theme:             cfg.Theme,
		config:            cfg,
		help:              help.New(),
		spinner:           spin,
		pathInput:         path,
		chatInput:         chat,
		keymap:            DefaultKeyMap(),
		scanPanel:         components.NewScanPanel(cfg.Theme),
		statsPanel:        components.NewStatsPanel(cfg.Theme),
		historyPanel:      components.NewHistoryPanel(cfg.Theme),
		achievementsPanel: components.NewAchievementsPanel(cfg.Theme),
		coachPanel:        components.NewCoachPanel(cfg.Theme),
		width:             cfg.Width,
		height:            cfg.Height,
	}
	m.help.ShowAll = cfg.ShowHelp
	m.resize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCmd())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case surfaceChangedMsg:
		m.syncFocus()

	case opDoneMsg:
		m.handleOpDone(msg)

	case tabActivatedMsg:
		if msg.err != nil {
			m.surface.SetStatus("Could not refresh " + msg.tab.String() + ". Is the backend running?")
		}

	case tea.KeyMsg:
		m.syncFocus()
		cmd = m.handleKey(msg)
	}

	m.coachPanel.Sync(m.surface.Snapshot().Coach)

	if m.recorder != nil {
		m.recorder.RecordState(m, msg)
	}
	return m, cmd
}

// syncFocus moves typing focus to the chat input whenever the coach is
// open, including when a scan handoff opened it in the background.
func (m *Model) syncFocus() {
	open := m.surface.Snapshot().Coach.Open
	switch {
	case open && m.focus != focusChat:
		m.focus = focusChat
		m.pathInput.Blur()
		m.chatInput.Focus()
	case !open && m.focus == focusChat:
		m.focus = focusNone
		m.chatInput.Blur()
	}
}

func (m *Model) handleOpDone(msg opDoneMsg) {
	if msg.err == nil {
		if msg.kind == opSelect || msg.kind == opClassify {
			m.surface.SetStatus("")
		}
		return
	}

	switch msg.kind {
	case opStart:
		m.surface.SetStatus("Could not reach the backend. Press Ctrl+R to retry.")
	case opSelect, opClassify:
		// The controller already shows its own warning or error.
	case opQuickAction, opChat, opTab:
		common.LogDebug("Coach operation ended with error", common.Fields{"kind": string(msg.kind), "error": msg.err.Error()})
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	switch m.focus {
	case focusPath:
		return m.handlePathKey(msg)
	case focusChat:
		return m.handleChatKey(msg)
	case focusNone:
	}

	if msg.Paste {
		return m.choosePath(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen
	case key.Matches(msg, m.keymap.ToggleCoach):
		m.app.Coach.Toggle()
		m.syncFocus()
		return nil
	case key.Matches(msg, m.keymap.NextTab):
		return m.switchTab(m.activeTab().Next())
	case key.Matches(msg, m.keymap.PrevTab):
		return m.switchTab(m.activeTab().Prev())
	case key.Matches(msg, m.keymap.Tab1):
		return m.switchTab(viewmodel.TabScan)
	case key.Matches(msg, m.keymap.Tab2):
		return m.switchTab(viewmodel.TabStats)
	case key.Matches(msg, m.keymap.Tab3):
		return m.switchTab(viewmodel.TabHistory)
	case key.Matches(msg, m.keymap.Tab4):
		return m.switchTab(viewmodel.TabAchievements)
	case key.Matches(msg, m.keymap.Refresh):
		m.surface.SetStatus("")
		return tea.Batch(m.startCmd(), m.activateTabCmd(m.activeTab()))
	}

	if m.activeTab() != viewmodel.TabScan {
		return nil
	}

	switch {
	case key.Matches(msg, m.keymap.Open):
		m.focus = focusPath
		m.pathInput.SetValue("")
		return m.pathInput.Focus()
	case key.Matches(msg, m.keymap.Classify):
		sv := m.surface.Snapshot().Scan
		if sv.Loading || !sv.ClassifyEnabled {
			return nil
		}
		return m.classifyCmd()
	case key.Matches(msg, m.keymap.Reset):
		m.app.Reset()
		return nil
	}
	return nil
}

func (m *Model) handlePathKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.focus = focusNone
		m.pathInput.Blur()
		return nil
	case tea.KeyEnter:
		path := m.pathInput.Value()
		m.focus = focusNone
		m.pathInput.Blur()
		m.pathInput.SetValue("")
		return m.choosePath(path)
	default:
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return cmd
	}
}

func (m *Model) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	v := m.surface.Snapshot().Coach

	switch {
	case key.Matches(msg, m.keymap.Close):
		m.app.Coach.Close()
		m.syncFocus()
		return nil
	case key.Matches(msg, m.keymap.ScrollUp):
		m.coachPanel.ScrollUp()
		return nil
	case key.Matches(msg, m.keymap.ScrollDown):
		m.coachPanel.ScrollDown()
		return nil
	case key.Matches(msg, m.keymap.Send):
		text := m.chatInput.Value()
		if !v.SendEnabled || text == "" {
			return nil
		}
		m.chatInput.SetValue("")
		return m.sendChatCmd(text)
	case key.Matches(msg, m.keymap.QuickAction) && m.chatInput.Value() == "" && v.HasQuickActions():
		actions := coach.QuickActions()
		idx := int(msg.Runes[0] - '1')
		if idx < 0 || idx >= len(actions) {
			return nil
		}
		return m.quickActionCmd(actions[idx])
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return cmd
}

func (m *Model) choosePath(path string) tea.Cmd {
	m.surface.SetActiveTab(viewmodel.TabScan)
	return m.selectPathCmd(path)
}

func (m *Model) switchTab(tab viewmodel.Tab) tea.Cmd {
	if tab == m.activeTab() {
		return nil
	}
	m.surface.SetActiveTab(tab)
	return m.activateTabCmd(tab)
}

func (m Model) activeTab() viewmodel.Tab {
	return m.surface.Snapshot().ActiveTab
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize() {
	main, side := m.columns()
	m.scanPanel.Resize(main)
	m.statsPanel.Resize(main)
	m.historyPanel.Resize(main)
	m.achievementsPanel.Resize(main)
	m.coachPanel.Resize(side, m.height-4)
	m.coachPanel.Sync(m.surface.Snapshot().Coach)
	m.pathInput.Width = max(main-6, 10)
	m.chatInput.Width = max(side-8, 10)
	m.help.Width = m.width
}

// columns splits the width between the main area and the coach overlay.
// Narrow terminals give the overlay the full width.
func (m Model) columns() (main, side int) {
	if m.width < wideLayout {
		return m.width - 2, m.width
	}
	side = m.width * 2 / 5
	return m.width - side - 3, side
}
