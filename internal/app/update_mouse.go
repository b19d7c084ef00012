package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/ui/controlbar"
	"reel/internal/ui/menubar"
)

// handleMouse reacts to pointer movement and clicks. Movement drives
// the fullscreen reveal zones; clicks hit the menu bar, the progress
// bar, and the control row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.phase != phaseReady || m.PickerOpen {
		return m, nil
	}
	now := time.Now()

	switch msg.Action {
	case tea.MouseActionMotion:
		m.Reveal.PointerMoved(msg.Y, m.Height, now)
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleClick(msg.X, msg.Y, now)
	}
	return m, nil
}

func (m Model) handleClick(x, y int, now time.Time) (tea.Model, tea.Cmd) {
	m.Reveal.PointerMoved(y, m.Height, now)

	switch {
	case y < menubar.Height && m.Reveal.MenuVisible():
		m.Picker = m.newPicker()
		m.PickerOpen = true
		return m, m.Picker.Init()

	case y == m.progressRow() && m.Reveal.ControlsVisible():
		state := m.controlState()
		if pos, ok := controlbar.ProgressHitTest(state, m.Width, x); ok {
			_ = m.Playback.SeekTo(pos)
		}
		return m, nil

	case y == m.controlsRow() && m.Reveal.ControlsVisible():
		_ = m.Playback.Toggle()
		return m, nil
	}
	return m, nil
}

// progressRow and controlsRow are the two bottom rows the control bar
// occupies.
func (m Model) progressRow() int { return m.Height - controlbar.Height }
func (m Model) controlsRow() int { return m.Height - 1 }

// controlState snapshots playback state for rendering and hit testing.
func (m Model) controlState() controlbar.State {
	s := controlbar.State{
		Playing:  m.Playback.IsPlaying(),
		Paused:   m.Playback.IsPaused(),
		Position: m.Playback.Position(),
		Duration: m.Playback.Duration(),
		Volume:   m.Playback.Volume(),
		Subtitle: m.Playback.SubtitleTrack(),
	}
	if media := m.Playback.Media(); media != nil {
		s.Title = media.Title
	}
	return s
}
