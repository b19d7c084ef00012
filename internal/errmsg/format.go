// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpLoadMedia  Op = "load video"
	OpClearMedia Op = "clear video"
	OpPlayPause  Op = "toggle playback"
	OpSeek       Op = "seek"
	OpVolume     Op = "change volume"
	OpSubtitle   Op = "switch subtitle track"

	// Window operations
	OpFullscreen Op = "toggle fullscreen"

	// Engine operations
	OpEngineStart   Op = "start playback engine"
	OpEngineInstall Op = "install playback engine"

	// Shell integration
	OpShortcutCreate Op = "create desktop shortcuts"
	OpShortcutRemove Op = "remove desktop shortcuts"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
