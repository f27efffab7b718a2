package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/Veraticus/ecoscan/internal/app"
)

// ErrNotTerminal is returned when stdout cannot host the dashboard.
var ErrNotTerminal = errors.New("the dashboard needs an interactive terminal")

// Run starts the dashboard against backend and blocks until the user quits
// or ctx is canceled.
func Run(ctx context.Context, backend app.Backend, appCfg app.Config, opts ...Option) error {
	if !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cleanupTerminal := func() {
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
		_, _ = os.Stdout.Write([]byte("\033[?1000l")) // Disable mouse
	}
	defer cleanupTerminal()

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Recorder != nil {
		defer cfg.Recorder.Close()
	}

	surface := NewSurface()
	a := app.New(backend, surface, surface, appCfg)
	m := newModel(ctx, a, surface, cfg)

	var programOpts []tea.ProgramOption
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.MouseSupport {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	program := newProgram(ctx, m, surface, programOpts...)
	defer surface.SetNotify(nil)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// newProgram builds the program and forwards surface changes to it. The
// surface is also changed from inside Update, where a direct program.Send
// would wait on the very loop that is running it.
func newProgram(ctx context.Context, m Model, surface *Surface, opts ...tea.ProgramOption) *tea.Program {
	program := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	pump := newRedrawPump()
	surface.SetNotify(pump.Notify)
	go pump.Run(ctx, program.Send)

	return program
}

// redrawPump coalesces surface changes into at most one pending redraw.
type redrawPump struct {
	pending chan struct{}
}

func newRedrawPump() *redrawPump {
	return &redrawPump{pending: make(chan struct{}, 1)}
}

// Notify records a change. It never blocks.
func (p *redrawPump) Notify() {
	select {
	case p.pending <- struct{}{}:
	default:
	}
}

// Run delivers one surfaceChangedMsg per batch of changes until ctx ends.
func (p *redrawPump) Run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.pending:
			send(surfaceChangedMsg{})
		}
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
