// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding for dispatch and documentation.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "window", "shell"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{[]string{"ctrl+q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"ctrl+o"}, ActionOpenFile, "Open video file", "global"},
	{[]string{"c"}, ActionClear, "Clear loaded video", "global"},

	// Playback
	{[]string{" ", "space"}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"right"}, ActionSeekForward, "Seek forward (hold to keep seeking)", "playback"},
	{[]string{"left"}, ActionSeekBack, "Seek backward (hold to keep seeking)", "playback"},
	{[]string{"up"}, ActionVolumeUp, "Volume up", "playback"},
	{[]string{"down"}, ActionVolumeDown, "Volume down", "playback"},
	{[]string{"s"}, ActionCycleSubtitle, "Cycle subtitle track", "playback"},

	// Window
	{[]string{"f", "f11"}, ActionToggleFullscreen, "Toggle fullscreen", "window"},
	{[]string{"esc"}, ActionExitFullscreen, "Exit fullscreen", "window"},

	// Shell integration
	{[]string{"ctrl+s"}, ActionCreateShortcuts, "Create desktop shortcuts", "shell"},
	{[]string{"ctrl+r"}, ActionRemoveShortcuts, "Remove desktop shortcuts", "shell"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
