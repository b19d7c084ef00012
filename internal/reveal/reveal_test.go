package reveal

import (
	"testing"
	"time"
)

func TestMachine_WindowedShowsEverything(t *testing.T) {
	m := NewMachine(0)

	if m.Mode() != ModeWindowed {
		t.Fatalf("Mode() = %v, want Windowed", m.Mode())
	}
	if !m.MenuVisible() || !m.ControlsVisible() || !m.CursorVisible() {
		t.Error("windowed mode should show all chrome")
	}
}

func TestMachine_EnterFullscreenHidesChrome(t *testing.T) {
	m := NewMachine(0)
	now := time.Now()

	if got := m.ToggleFullscreen(now); got != ModeFullscreen {
		t.Fatalf("ToggleFullscreen() = %v, want Fullscreen", got)
	}
	if m.MenuVisible() || m.ControlsVisible() || m.CursorVisible() {
		t.Error("entering fullscreen should hide all chrome")
	}
}

func TestMachine_PointerZonesRevealBars(t *testing.T) {
	m := NewMachine(0)
	now := time.Now()
	m.ToggleFullscreen(now)

	tests := []struct {
		name         string
		y            int
		wantMenu     bool
		wantControls bool
	}{
		{"top zone", 0, true, false},
		{"second row", 1, true, false},
		{"middle", 20, false, false},
		{"bottom zone", 39, false, true},
		{"last row", 40, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.PointerMoved(tt.y, 41, now)
			if m.MenuVisible() != tt.wantMenu {
				t.Errorf("MenuVisible() = %v, want %v", m.MenuVisible(), tt.wantMenu)
			}
			if m.ControlsVisible() != tt.wantControls {
				t.Errorf("ControlsVisible() = %v, want %v", m.ControlsVisible(), tt.wantControls)
			}
			if !m.CursorVisible() {
				t.Error("CursorVisible() = false after pointer activity")
			}
		})
	}
}

func TestMachine_TimeoutHidesEverything(t *testing.T) {
	m := NewMachine(3 * time.Second)
	now := time.Now()
	m.ToggleFullscreen(now)
	m.PointerMoved(0, 40, now)

	// Still within the timeout.
	if changed := m.Tick(now.Add(2 * time.Second)); changed {
		t.Error("Tick() before timeout reported a change")
	}
	if !m.MenuVisible() {
		t.Error("menu hidden before timeout")
	}

	// Past the timeout.
	if changed := m.Tick(now.Add(3100 * time.Millisecond)); !changed {
		t.Error("Tick() past timeout did not report a change")
	}
	if m.MenuVisible() || m.ControlsVisible() || m.CursorVisible() {
		t.Error("chrome still visible past timeout")
	}

	// Further ticks are no-ops.
	if changed := m.Tick(now.Add(4 * time.Second)); changed {
		t.Error("Tick() with nothing visible reported a change")
	}
}

func TestMachine_ActivityResetsTimer(t *testing.T) {
	m := NewMachine(3 * time.Second)
	now := time.Now()
	m.ToggleFullscreen(now)
	m.PointerMoved(0, 40, now)

	// Fresh activity just before the deadline keeps chrome visible.
	m.PointerMoved(0, 40, now.Add(2900*time.Millisecond))
	if changed := m.Tick(now.Add(3100 * time.Millisecond)); changed {
		t.Error("Tick() hid chrome despite recent activity")
	}
	if !m.MenuVisible() {
		t.Error("menu hidden despite recent activity")
	}
}

func TestMachine_KeyActivityShowsCursorOnly(t *testing.T) {
	m := NewMachine(0)
	now := time.Now()
	m.ToggleFullscreen(now)

	if changed := m.KeyActivity(now); !changed {
		t.Error("KeyActivity() did not report a change")
	}
	if !m.CursorVisible() {
		t.Error("cursor hidden after key activity")
	}
	if m.MenuVisible() || m.ControlsVisible() {
		t.Error("key activity revealed the bars")
	}
}

func TestMachine_ExitFullscreenAlwaysReturnsToWindowed(t *testing.T) {
	m := NewMachine(0)
	now := time.Now()

	if m.ExitFullscreen() {
		t.Error("ExitFullscreen() in windowed mode reported a change")
	}

	m.ToggleFullscreen(now)
	// Regardless of what is revealed, escape always leaves fullscreen.
	m.PointerMoved(0, 40, now)
	if !m.ExitFullscreen() {
		t.Error("ExitFullscreen() in fullscreen did not report a change")
	}
	if m.Mode() != ModeWindowed {
		t.Errorf("Mode() = %v, want Windowed", m.Mode())
	}
	if !m.MenuVisible() || !m.ControlsVisible() || !m.CursorVisible() {
		t.Error("windowed mode after exit should show all chrome")
	}
}

func TestMachine_WindowedIgnoresActivity(t *testing.T) {
	m := NewMachine(0)
	now := time.Now()

	if m.PointerMoved(0, 40, now) {
		t.Error("PointerMoved() in windowed mode reported a change")
	}
	if m.KeyActivity(now) {
		t.Error("KeyActivity() in windowed mode reported a change")
	}
	if m.Tick(now.Add(time.Minute)) {
		t.Error("Tick() in windowed mode reported a change")
	}
}
