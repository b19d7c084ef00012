package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/osd"
)

// Update implements tea.Model. Messages are routed by category first,
// then by concrete type.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.PickerOpen {
			m.Picker.Height = max(m.Height-10, 5)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if m.phase == phaseReady {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case StderrMsg:
		// The engine runs with --quiet, so anything on stderr is worth
		// surfacing.
		m.ErrorMsg = string(msg)
		cmd := m.showOSD(osd.KindNotice, string(msg))
		return m, tea.Batch(cmd, WatchStderr())

	case LoadingMessage:
		return m.handleLoadingMsg(msg)

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)
	}

	// Remaining messages belong to the picker while it is open.
	if m.PickerOpen {
		return m.updatePicker(msg)
	}
	return m, nil
}

// updatePicker forwards a message to the file picker and reacts to a
// selection.
func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)

	if ok, path := m.Picker.DidSelectFile(msg); ok {
		m.PickerOpen = false
		return m, tea.Batch(cmd, m.LoadMediaCmd(path))
	}
	return m, cmd
}
