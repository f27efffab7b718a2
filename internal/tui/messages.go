package tui

import "github.com/Veraticus/ecoscan/internal/tui/viewmodel"

// surfaceChangedMsg asks for a redraw after the surface changed outside
// Update.
type surfaceChangedMsg struct{}

// opKind names a background operation.
type opKind string

const (
	opStart       opKind = "start"
	opSelect      opKind = "select"
	opClassify    opKind = "classify"
	opTab         opKind = "tab"
	opQuickAction opKind = "quick-action"
	opChat        opKind = "chat"
)

// opDoneMsg reports that a background operation finished.
type opDoneMsg struct {
	err  error
	kind opKind
}

// tabActivatedMsg reports a refreshed tab.
type tabActivatedMsg struct {
	err error
	tab viewmodel.Tab
}
