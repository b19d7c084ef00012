// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionOpenFile Action = "open_file"
	ActionClear    Action = "clear"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionCycleSubtitle Action = "cycle_subtitle"

	// Window actions
	ActionToggleFullscreen Action = "toggle_fullscreen"
	ActionExitFullscreen   Action = "exit_fullscreen"

	// Shell integration actions
	ActionCreateShortcuts Action = "create_shortcuts"
	ActionRemoveShortcuts Action = "remove_shortcuts"
)
