package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures every message and the frame it produced, for
// debugging layouts against a real backend.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a recorder writing under dir. An empty dir uses a
// fresh directory in the system temp dir. A disabled recorder ignores
// every call.
func NewRecorder(enabled bool, dir string) *Recorder {
	if !enabled {
		return &Recorder{}
	}

	if dir == "" {
		dir = filepath.Join(os.TempDir(), fmt.Sprintf("ecoscan-record-%d", time.Now().Unix()))
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &Recorder{}
	}

	logFile, err := os.Create(filepath.Clean(filepath.Join(dir, "tui.log"))) // #nosec G304 -- constructed path
	if err != nil {
		return &Recorder{}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: dir,
	}
	r.Log("Recorder started at %s", dir)
	return r
}

// Dir returns the directory frames are written to.
func (r *Recorder) Dir() string {
	return r.frameDir
}

// Frames returns the number of frames captured so far.
func (r *Recorder) Frames() int {
	return r.frameNum
}

// RecordState captures the model after msg was applied.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if !r.enabled {
		return
	}

	r.frameNum++
	v := m.surface.Snapshot()

	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("Tab: %s", v.ActiveTab)
	r.Log("Loading: %v  Coach open: %v  Typing: %v", v.Scan.Loading, v.Coach.Open, v.Coach.Typing)

	view := m.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if !r.enabled || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	_ = r.logFile.Sync()
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r.logFile != nil {
		r.Log("Recording complete. %d frames captured.", r.frameNum)
		_ = r.logFile.Close()
		r.logFile = nil
	}
}
