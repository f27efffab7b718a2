package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Tabs
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding

	// Scan
	Open     key.Binding
	Classify key.Binding
	Reset    key.Binding
	Refresh  key.Binding

	// Coach
	ToggleCoach key.Binding
	Send        key.Binding
	QuickAction key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Close       key.Binding

	// Application
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("Shift+Tab", "previous tab"),
		),
		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "scan")),
		Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "stats")),
		Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "history")),
		Tab4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "achievements")),

		Open: key.NewBinding(
			key.WithKeys("o", "/"),
			key.WithHelp("o", "open image"),
		),
		Classify: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "classify"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "scan another"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),

		ToggleCoach: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "coach"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		QuickAction: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "quick action"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "older messages"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "newer messages"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Classify, k.ToggleCoach, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Classify, k.Reset, k.Refresh},
		{k.NextTab, k.PrevTab, k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.ToggleCoach, k.Send, k.QuickAction, k.ScrollUp, k.ScrollDown, k.Close},
		{k.Help, k.ClearScreen, k.Quit, k.ForceQuit},
	}
}

// coachKeyMap is the help shown while the coach overlay has focus.
type coachKeyMap struct {
	KeyMap
}

func (k coachKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.QuickAction, k.Close, k.ForceQuit}
}

func (k coachKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.QuickAction, k.Close},
		{k.ScrollUp, k.ScrollDown, k.ForceQuit},
	}
}
