// internal/playback/state.go
package playback

// State represents the playback state.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if media is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Volume bounds. The upper bound is 200% because the engine supports
// amplification above nominal level.
const (
	MinVolume = 0
	MaxVolume = 200
)

// ClampVolume forces a volume percentage into [MinVolume, MaxVolume].
func ClampVolume(percent int) int {
	if percent < MinVolume {
		return MinVolume
	}
	if percent > MaxVolume {
		return MaxVolume
	}
	return percent
}
