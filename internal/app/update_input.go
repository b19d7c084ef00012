package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/errmsg"
	"reel/internal/keymap"
	"reel/internal/osd"
	"reel/internal/shell"
)

// handleKey dispatches a key press through the keymap resolver.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	action := m.Resolver.Resolve(key)

	// Quit works in every phase, even before the engine is up.
	if action == keymap.ActionQuit {
		return m.quit()
	}

	if m.PickerOpen {
		// Escape closes the picker without touching fullscreen state.
		if action == keymap.ActionExitFullscreen {
			m.PickerOpen = false
			return m, nil
		}
		return m.updatePicker(msg)
	}

	if m.phase != phaseReady {
		return m, nil
	}

	now := time.Now()
	m.Reveal.KeyActivity(now)

	switch action {
	case keymap.ActionOpenFile:
		m.Picker = m.newPicker()
		m.PickerOpen = true
		return m, m.Picker.Init()

	case keymap.ActionClear:
		_ = m.Playback.Clear()
		return m, nil

	case keymap.ActionPlayPause:
		_ = m.Playback.Toggle()
		return m, nil

	case keymap.ActionSeekForward:
		return m.handleSeekPress(true, now)

	case keymap.ActionSeekBack:
		return m.handleSeekPress(false, now)

	case keymap.ActionVolumeUp:
		_ = m.Playback.AdjustVolume(m.Cfg.VolumeStep)
		return m, nil

	case keymap.ActionVolumeDown:
		_ = m.Playback.AdjustVolume(-m.Cfg.VolumeStep)
		return m, nil

	case keymap.ActionCycleSubtitle:
		_ = m.Playback.CycleSubtitle()
		return m, nil

	case keymap.ActionToggleFullscreen:
		m.Reveal.ToggleFullscreen(now)
		_ = m.Playback.SetFullscreen(m.Reveal.Fullscreen())
		return m, nil

	case keymap.ActionExitFullscreen:
		if m.Reveal.ExitFullscreen() {
			_ = m.Playback.SetFullscreen(false)
		}
		return m, nil

	case keymap.ActionCreateShortcuts:
		return m.handleShortcuts(true)

	case keymap.ActionRemoveShortcuts:
		return m.handleShortcuts(false)
	}
	return m, nil
}

// handleSeekPress handles a seek key press. The first press in a
// direction seeks one step immediately; further presses in the same
// direction feed the hold, whose tick loop takes over the seeking.
func (m Model) handleSeekPress(forward bool, now time.Time) (tea.Model, tea.Cmd) {
	if m.Playback.Media() == nil {
		return m, nil
	}

	if m.hold != nil && m.hold.forward == forward && !m.hold.expired(now) {
		m.hold.press(now)
		return m, nil
	}

	m.hold = newSeekHold(forward, now)
	m.holdVersion++

	step := m.Cfg.SeekStep()
	kind := osd.KindSeekForward
	if !forward {
		step = -step
		kind = osd.KindSeekBack
	}
	_ = m.Playback.Seek(step)

	cmd := m.showOSD(kind, formatPosition(m.Playback.Position(), m.Playback.Duration()))
	return m, tea.Batch(cmd, SeekHoldTickCmd(m.Cfg.SeekInterval(), m.holdVersion))
}

func (m Model) handleShortcuts(create bool) (tea.Model, tea.Cmd) {
	op := errmsg.OpShortcutCreate
	if !create {
		op = errmsg.OpShortcutRemove
	}

	mgr, err := shell.NewManager()
	if err == nil {
		if create {
			err = mgr.Create()
		} else {
			err = mgr.Remove()
		}
	}
	if err != nil {
		return m, m.showOSD(osd.KindError, errmsg.Format(op, err))
	}

	text := "Shortcuts created"
	if !create {
		text = "Shortcuts removed"
	}
	return m, m.showOSD(osd.KindNotice, text)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.mpris != nil {
		_ = m.mpris.Close()
	}
	if m.Playback != nil {
		_ = m.Playback.Close()
	}
	return m, tea.Quit
}
