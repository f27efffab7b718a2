package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ecoscan/internal/app"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/Veraticus/ecoscan/internal/testutil"
	"github.com/Veraticus/ecoscan/internal/tui/viewmodel"
)

// TestProgramSurvivesSurfaceChangesDuringUpdate drives a real program with
// the redraw hook installed. Toggling the coach and switching tabs change
// the surface from inside Update; the program must keep consuming input
// and quit cleanly.
func TestProgramSurvivesSurfaceChangesDuringUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	surface := NewSurface()
	a := app.New(&fakeBackend{stats: model.Stats{Total: 3}}, surface, surface, app.Config{
		Scheduler: testutil.NewImmediateScheduler(),
	})
	m := newModel(ctx, a, surface, defaultConfig())

	program := newProgram(ctx, m, surface,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	t.Cleanup(program.Kill)

	done := make(chan error, 1)
	go func() {
		_, err := program.Run()
		done <- err
	}()

	go func() {
		program.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
		program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
		program.Send(tea.KeyMsg{Type: tea.KeyEsc})
		program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
		program.Send(tea.KeyMsg{Type: tea.KeyCtrlL})
		program.Quit()
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("program did not quit; coach open=%v", surface.Snapshot().Coach.Open)
	}

	v := surface.Snapshot()
	assert.False(t, v.Coach.Open)
	assert.Equal(t, viewmodel.TabStats, v.ActiveTab)
}

func TestRedrawPumpCoalesces(t *testing.T) {
	pump := newRedrawPump()
	for range 10 {
		pump.Notify()
	}

	ctx, cancel := context.WithCancel(context.Background())
	sent := make(chan tea.Msg, 10)
	go pump.Run(ctx, func(msg tea.Msg) { sent <- msg })

	assert.IsType(t, surfaceChangedMsg{}, <-sent)
	cancel()

	select {
	case <-sent:
		t.Fatal("notifications should coalesce into one redraw")
	case <-time.After(50 * time.Millisecond):
	}
}
