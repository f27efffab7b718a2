package scan

import "fmt"

// State is the upload lifecycle state.
type State int

const (
	// StateIdle means no file is held.
	StateIdle State = iota
	// StatePreviewing means a file is held and previewed.
	StatePreviewing
	// StateClassifying means a classification request is in flight.
	StateClassifying
	// StateResulted means a classification is on screen.
	StateResulted
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePreviewing:
		return "Previewing"
	case StateClassifying:
		return "Classifying"
	case StateResulted:
		return "Resulted"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}
