package playback

import (
	"time"

	"reel/internal/engine"
)

// Service defines the playback service contract. It is the single owner
// of playback state; the UI never talks to the engine adapter directly.
type Service interface {
	// Media control
	Load(path string) error // Replace loaded media; prior state survives a rejected file
	Clear() error           // Release loaded media and reset state

	// Playback control
	Play() error
	Pause() error
	Toggle() error
	Seek(delta time.Duration) error      // Relative, clamped to [0, duration]
	SeekTo(position time.Duration) error // Absolute, clamped to [0, duration]

	// Volume control, clamped to [0, 200]
	SetVolume(percent int) error
	AdjustVolume(delta int) error

	// Subtitle control
	CycleSubtitle() error

	// Presentation
	SetFullscreen(on bool) error

	// State queries
	State() State
	IsPlaying() bool
	IsPaused() bool
	IsStopped() bool
	Position() time.Duration
	Duration() time.Duration
	Volume() int
	Media() *Media
	SubtitleTrack() string

	// RefreshPosition polls the engine for position/duration.
	// Called from the periodic UI tick.
	RefreshPosition()

	// Engine exposes the adapter for rendering-only access.
	Engine() engine.Interface

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
