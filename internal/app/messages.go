// Package app contains application-level types and messages for the TUI.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/install"
	"reel/internal/playback"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages related to playback.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LoadingMessage is implemented by messages related to engine startup.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// TickMsg is sent periodically to refresh position and reveal state.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// SeekHoldTickMsg drives continuous seeking while a seek key is held.
// The Version field is used to ignore ticks from an abandoned hold.
type SeekHoldTickMsg struct {
	Version int
}

func (SeekHoldTickMsg) playbackMessage() {}

// OSDExpireMsg is sent when an on-screen display message's lifetime
// ends. The Version field ignores timers of superseded messages.
type OSDExpireMsg struct {
	Version int
}

func (OSDExpireMsg) playbackMessage() {}

// MediaLoadResultMsg reports a completed load request. Failures are
// surfaced through the service's error events, so Err is only used to
// decide whether follow-up commands run.
type MediaLoadResultMsg struct {
	Path string
	Err  error
}

func (MediaLoadResultMsg) playbackMessage() {}

// ServiceStateChangedMsg is sent when the playback state changes.
type ServiceStateChangedMsg struct {
	Previous playback.State
	Current  playback.State
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceMediaChangedMsg is sent when media is loaded or cleared.
type ServiceMediaChangedMsg struct {
	Media *playback.Media
}

func (ServiceMediaChangedMsg) playbackMessage() {}

// ServiceVolumeChangedMsg is sent when the volume changes.
type ServiceVolumeChangedMsg struct {
	Volume int
}

func (ServiceVolumeChangedMsg) playbackMessage() {}

// ServiceSubtitleChangedMsg is sent when the subtitle track changes.
type ServiceSubtitleChangedMsg struct {
	Track string
}

func (ServiceSubtitleChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent when a seek occurs.
// Used to drain the subscription channel; position updates come from TickMsg.
type ServicePositionChangedMsg struct{}

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when a playback operation fails.
type ServiceErrorMsg struct {
	Operation string
	Path      string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// EngineReadyMsg is sent when the engine binary has been located.
type EngineReadyMsg struct {
	Path string
}

func (EngineReadyMsg) loadingMessage() {}

// EngineFailedMsg is sent when the engine cannot be located or installed.
type EngineFailedMsg struct {
	Err error
}

func (EngineFailedMsg) loadingMessage() {}

// InstallProgressMsg reports engine installation progress.
type InstallProgressMsg install.Status

func (InstallProgressMsg) loadingMessage() {}

// ServiceReadyMsg is sent when the playback service is up.
type ServiceReadyMsg struct {
	Service playback.Service
}

func (ServiceReadyMsg) loadingMessage() {}

// StderrMsg carries a line captured from the engine's stderr.
type StderrMsg string
