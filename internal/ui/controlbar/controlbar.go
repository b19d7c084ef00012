// Package controlbar renders the playback controls at the bottom of
// the window: a progress row and a controls row.
package controlbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"reel/internal/icons"
	"reel/internal/ui/render"
	"reel/internal/ui/styles"
)

// Height is the number of rows the control bar occupies.
const Height = 2

// State holds everything needed to render the control bar.
type State struct {
	Playing  bool
	Paused   bool
	Title    string
	Position time.Duration
	Duration time.Duration
	Volume   int    // percent, 0-200
	Subtitle string // active track name, "Off" when disabled
}

// Active reports whether media is loaded.
func (s State) Active() bool {
	return s.Playing || s.Paused
}

// Render returns the two control bar rows for the given width.
func Render(s State, width int) string {
	return RenderProgress(s, width) + "\n" + renderControls(s, width)
}

// RenderProgress renders the progress row: position, bar, duration.
func RenderProgress(s State, width int) string {
	if !s.Active() {
		return styles.T().S().Subtle.Render(render.Pad("", width))
	}

	posStr := formatDuration(s.Position)
	durStr := formatDuration(s.Duration)

	barWidth := progressBarWidth(s, width)
	if barWidth < 3 {
		return render.Pad(posStr+" / "+durStr, width)
	}

	filled := filledCells(s.Position, s.Duration, barWidth)
	t := styles.T()
	bar := lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat("░", barWidth-filled))

	return t.S().Muted.Render(posStr) + " " + bar + " " + t.S().Muted.Render(durStr)
}

func renderControls(s State, width int) string {
	t := styles.T()

	if !s.Active() {
		hint := "Ctrl+O to open a video"
		return t.S().Subtle.Render(render.Pad(hint, width))
	}

	status := icons.Play()
	if s.Paused {
		status = icons.Pause()
	}
	controls := fmt.Sprintf("%s  %s  %s  %s",
		icons.SeekBack(),
		t.S().Playing.Render(status),
		icons.Stop(),
		icons.SeekFwd(),
	)

	right := fmt.Sprintf("%s %3d%%", icons.Volume(), s.Volume)
	if s.Subtitle != "" && s.Subtitle != "Off" {
		right = fmt.Sprintf("%s %s   %s", icons.Subtitle(), s.Subtitle, right)
	}
	right = t.S().Muted.Render(right)

	title := t.S().Title.Render(render.TruncateEllipsis(s.Title, max(width/2, 10)))

	left := controls + "   " + title
	return render.Row(left, right, width)
}

// ProgressHitTest maps a click at column x on the progress row to a
// playback position. Returns false when the click misses the bar.
func ProgressHitTest(s State, width, x int) (time.Duration, bool) {
	if !s.Active() || s.Duration <= 0 {
		return 0, false
	}

	barWidth := progressBarWidth(s, width)
	if barWidth < 3 {
		return 0, false
	}

	start := lipgloss.Width(formatDuration(s.Position)) + 1
	if x < start || x >= start+barWidth {
		return 0, false
	}

	ratio := float64(x-start) / float64(barWidth)
	return time.Duration(ratio * float64(s.Duration)), true
}

// progressBarWidth returns the bar width for the current layout. The
// hit test depends on this matching RenderProgress exactly.
func progressBarWidth(s State, width int) int {
	posStr := formatDuration(s.Position)
	durStr := formatDuration(s.Duration)
	return width - lipgloss.Width(posStr) - lipgloss.Width(durStr) - 2
}

func filledCells(position, duration time.Duration, barWidth int) int {
	if duration <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(ratio*float64(barWidth)), barWidth)
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
