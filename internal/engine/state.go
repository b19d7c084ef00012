// internal/engine/state.go
package engine

// State represents the engine playback state machine.
//
// Three states with the following valid transitions:
//
//	┌──────────┐   load+play     ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                            │ │
//	     │ clear                pause │ │ clear
//	     │                            ▼ │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                 clear       └──────────┘
//
// Toggle() cycles Playing ↔ Paused and is a no-op when Stopped.
// Invalid transitions (pause while stopped, clear while stopped) are
// handled gracefully as no-ops.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if media is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
