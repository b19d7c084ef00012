// Package reveal tracks which chrome elements are visible.
//
// In windowed mode the menu bar and control bar are always shown. In
// fullscreen mode they start hidden and are revealed by pointer
// activity, then hidden again after a period of inactivity.
//
// State transitions:
//
//	Windowed ──toggle──> Fullscreen (all chrome hidden)
//	Fullscreen ──toggle/escape──> Windowed (all chrome shown)
//
//	Fullscreen:
//	  pointer in top zone    -> menu bar shown
//	  pointer in bottom zone -> control bar shown
//	  any activity           -> cursor shown, inactivity timer reset
//	  timeout elapsed        -> everything hidden again
package reveal

import "time"

// Mode is the window presentation mode.
type Mode int

const (
	ModeWindowed Mode = iota
	ModeFullscreen
)

func (m Mode) String() string {
	if m == ModeFullscreen {
		return "Fullscreen"
	}
	return "Windowed"
}

// DefaultTimeout is the inactivity delay before fullscreen chrome hides.
const DefaultTimeout = 3 * time.Second

// DefaultZone is the height in rows of the reveal zones at the top and
// bottom edges of the window.
const DefaultZone = 2

// Machine tracks chrome visibility across mode changes and activity.
type Machine struct {
	Timeout    time.Duration
	TopZone    int
	BottomZone int

	mode         Mode
	menuShown    bool
	controlShown bool
	cursorShown  bool
	lastActivity time.Time
}

// NewMachine creates a machine in windowed mode.
func NewMachine(timeout time.Duration) *Machine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Machine{
		Timeout:    timeout,
		TopZone:    DefaultZone,
		BottomZone: DefaultZone,
		mode:       ModeWindowed,
	}
}

func (m *Machine) Mode() Mode       { return m.mode }
func (m *Machine) Fullscreen() bool { return m.mode == ModeFullscreen }

// MenuVisible reports whether the menu bar should be drawn.
func (m *Machine) MenuVisible() bool { return m.mode == ModeWindowed || m.menuShown }

// ControlsVisible reports whether the control bar should be drawn.
func (m *Machine) ControlsVisible() bool { return m.mode == ModeWindowed || m.controlShown }

// CursorVisible reports whether the pointer should be visible.
func (m *Machine) CursorVisible() bool { return m.mode == ModeWindowed || m.cursorShown }

// ToggleFullscreen flips the mode. Entering fullscreen hides all
// chrome immediately; leaving it restores everything.
func (m *Machine) ToggleFullscreen(now time.Time) Mode {
	if m.mode == ModeWindowed {
		m.mode = ModeFullscreen
		m.hideAll()
		m.lastActivity = now
	} else {
		m.mode = ModeWindowed
		m.hideAll()
	}
	return m.mode
}

// ExitFullscreen returns to windowed mode. Reports whether the mode
// changed. Always succeeds regardless of chrome state.
func (m *Machine) ExitFullscreen() bool {
	if m.mode != ModeFullscreen {
		return false
	}
	m.mode = ModeWindowed
	m.hideAll()
	return true
}

// PointerMoved records pointer activity at row y in a window of the
// given height. Reports whether visibility changed.
func (m *Machine) PointerMoved(y, height int, now time.Time) bool {
	if m.mode != ModeFullscreen {
		return false
	}
	m.lastActivity = now

	menu := y < m.TopZone
	controls := height > 0 && y >= height-m.BottomZone

	changed := !m.cursorShown || menu != m.menuShown || controls != m.controlShown
	m.cursorShown = true
	m.menuShown = menu
	m.controlShown = controls
	return changed
}

// KeyActivity records keyboard activity, which reveals the cursor but
// not the bars. Reports whether visibility changed.
func (m *Machine) KeyActivity(now time.Time) bool {
	if m.mode != ModeFullscreen {
		return false
	}
	m.lastActivity = now
	changed := !m.cursorShown
	m.cursorShown = true
	return changed
}

// Tick hides all chrome once the inactivity timeout has elapsed.
// Reports whether visibility changed.
func (m *Machine) Tick(now time.Time) bool {
	if m.mode != ModeFullscreen {
		return false
	}
	if now.Sub(m.lastActivity) < m.Timeout {
		return false
	}
	if !m.menuShown && !m.controlShown && !m.cursorShown {
		return false
	}
	m.hideAll()
	return true
}

func (m *Machine) hideAll() {
	m.menuShown = false
	m.controlShown = false
	m.cursorShown = false
}
