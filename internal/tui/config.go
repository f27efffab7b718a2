package tui

import (
	"time"

	"github.com/Veraticus/ecoscan/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme          themes.Theme
	Recorder       *Recorder
	RequestTimeout time.Duration
	Width          int
	Height         int
	AltScreen      bool
	MouseSupport   bool
	ShowHelp       bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Width:        100,
		Height:       32,
		AltScreen:    true,
		MouseSupport: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithMouse toggles mouse support.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}

// WithRecorder records every frame for debugging.
func WithRecorder(r *Recorder) Option {
	return func(c *Config) {
		c.Recorder = r
	}
}

// WithRequestTimeout bounds each backend operation started from the UI.
// Zero leaves operations bounded only by the program context.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}
