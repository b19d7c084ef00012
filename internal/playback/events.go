package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// MediaChange is emitted when media is loaded or cleared.
//
// Emitted by:
//   - Load: when the engine accepts a new file
//   - Clear: with a nil Media
//
// NOT emitted by:
//   - Load failures: the previous media stays loaded and only an
//     ErrorEvent fires, so subscribers never see a phantom change.
type MediaChange struct {
	Media *Media
}

// PositionChange is emitted when a seek occurs. Ordinary playback
// progress is polled, not evented.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when the volume level changes.
type VolumeChange struct {
	Volume int
}

// SubtitleChange is emitted when the active subtitle track changes.
type SubtitleChange struct {
	// Track is the display name of the active track, "Off" when disabled.
	Track string
}

// ErrorEvent is emitted when an operation fails.
type ErrorEvent struct {
	Operation string // e.g. "load", "seek"
	Path      string // media path if applicable
	Err       error
}
