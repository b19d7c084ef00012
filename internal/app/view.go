package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"reel/internal/icons"
	"reel/internal/install"
	"reel/internal/ui/controlbar"
	"reel/internal/ui/menubar"
	"reel/internal/ui/overlay"
	"reel/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.phase != phaseReady {
		return m.startupView()
	}

	view := m.playerView()

	if m.OSD.Active() {
		badge := m.OSD.Render()
		view = overlay.Place(view, badge, 1, m.Width-lipgloss.Width(badge)-2, m.Width)
	}
	if m.PickerOpen {
		view = overlay.Center(view, m.pickerView(), m.Width, m.Height)
	}
	return view
}

// startupView covers engine detection, installation and failure.
func (m Model) startupView() string {
	s := styles.T().S()
	var body string

	switch m.phase {
	case phaseDetecting:
		body = m.Spinner.View() + " " + s.Muted.Render("Looking for VLC...")

	case phaseInstalling:
		line := "Installing VLC..."
		if m.installStatus.Phase == install.PhaseDownloading && m.installStatus.Total > 0 {
			line = fmt.Sprintf("Downloading VLC... %s / %s",
				humanize.IBytes(uint64(m.installStatus.Received)),
				humanize.IBytes(uint64(m.installStatus.Total)))
		}
		body = m.Spinner.View() + " " + s.Muted.Render(line)

	case phaseFailed:
		body = s.Error.Render(m.startupErr) + "\n\n" +
			s.Subtle.Render("Press Ctrl+Q to quit")
	}

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, body)
}

// playerView assembles the main screen. In windowed mode the menu bar
// and control bar are always present; in fullscreen they overlay the
// video area only while revealed.
func (m Model) playerView() string {
	if m.Reveal.Fullscreen() {
		return m.fullscreenView()
	}

	videoHeight := m.Height - menubar.Height - controlbar.Height
	var b strings.Builder
	b.WriteString(menubar.Render(m.mediaTitle(), m.Width))
	b.WriteString("\n")
	b.WriteString(m.videoArea(videoHeight))
	b.WriteString("\n")
	b.WriteString(controlbar.Render(m.controlState(), m.Width))
	return b.String()
}

func (m Model) fullscreenView() string {
	view := m.videoArea(m.Height)
	if m.Reveal.MenuVisible() {
		view = overlay.Place(view, menubar.Render(m.mediaTitle(), m.Width), 0, 0, m.Width)
	}
	if m.Reveal.ControlsVisible() {
		bar := controlbar.Render(m.controlState(), m.Width)
		view = overlay.Place(view, bar, m.Height-controlbar.Height, 0, m.Width)
	}
	return view
}

// videoArea renders the placeholder for the engine's video window. The
// engine draws in its own window; this pane shows what is loaded.
func (m Model) videoArea(height int) string {
	s := styles.T().S()
	var body string
	if media := m.Playback.Media(); media != nil {
		body = icons.FormatVideo(s.Title.Render(media.Title)) + "\n" +
			s.Subtle.Render(formatPosition(m.Playback.Position(), m.Playback.Duration()))
	} else {
		body = s.Muted.Render("No video loaded") + "\n" +
			s.Subtle.Render("Ctrl+O to open a file")
	}
	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) pickerView() string {
	s := styles.T().S()
	title := s.Title.Render("Open video")
	return styles.PanelStyle(true).Render(title + "\n\n" + m.Picker.View())
}

func (m Model) mediaTitle() string {
	if media := m.Playback.Media(); media != nil {
		return media.Title
	}
	return ""
}

// formatPosition renders "m:ss / m:ss" for the OSD and video pane.
func formatPosition(pos, dur time.Duration) string {
	return formatClock(pos) + " / " + formatClock(dur)
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%d:%02d", min, sec)
}
