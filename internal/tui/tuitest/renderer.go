package tuitest

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// TestRenderer drives a model without a terminal and keeps the last frame.
type TestRenderer struct {
	Output      string
	Commands    []tea.Cmd
	Messages    []tea.Msg
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	next, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}
	r.Output = next.View()
	return next, cmd
}

// Send applies msgs in order.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// ProcessCommands runs every pending command, feeding the resulting
// messages back into the model until no commands remain. Batches are
// flattened. Spinner ticks are dropped so the loop terminates.
func (r *TestRenderer) ProcessCommands(model tea.Model) tea.Model {
	for len(r.Commands) > 0 {
		pending := r.Commands
		r.Commands = nil

		for _, cmd := range pending {
			for _, msg := range run(cmd) {
				model, _ = r.Update(model, msg)
			}
		}
	}
	return model
}

// run executes cmd and flattens batches into their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// StripANSI returns the last frame without escape sequences.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// StripANSI removes ANSI escape codes for content-only assertions.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
