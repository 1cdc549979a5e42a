// Package recording drives the capture lifecycle of an audio or video
// session and persists completed recordings.
package recording

import (
	"errors"
	"fmt"
)

// State is a capture-session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRequestingPermission
	StateCapturing
	StateFinalizing
)

var (
	ErrInvalidTransition  = errors.New("invalid capture state transition")
	ErrPermissionDenied   = errors.New("media permission denied")
	ErrServiceUnavailable = errors.New("media storage is not configured")
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequestingPermission:
		return "requesting_permission"
	case StateCapturing:
		return "capturing"
	case StateFinalizing:
		return "finalizing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// validTransitions is the complete transition table. Anything absent is
// illegal, which is what makes double-start and stop-while-finalizing
// impossible rather than merely discouraged.
var validTransitions = map[State][]State{
	StateIdle:                 {StateRequestingPermission},
	StateRequestingPermission: {StateCapturing, StateIdle},
	StateCapturing:            {StateFinalizing},
	StateFinalizing:           {StateIdle},
}

func canTransition(from, to State) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// transition moves from→to or reports ErrInvalidTransition.
func transition(from, to State) (State, error) {
	if !canTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}
