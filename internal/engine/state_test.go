// internal/engine/state_test.go
package engine

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}
	for _, tt := range tests {
		if got := tt.state.IsActive(); got != tt.want {
			t.Errorf("%v.IsActive() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestMock_Transitions(t *testing.T) {
	m := NewMock()

	// Toggle with no media is a no-op.
	if err := m.Toggle(); err != nil || m.State() != Stopped {
		t.Fatalf("Toggle on stopped: err=%v state=%v", err, m.State())
	}

	if err := m.Load("/movies/film.mp4"); err != nil {
		t.Fatal(err)
	}
	if m.State() != Playing {
		t.Fatalf("after Load: %v", m.State())
	}

	_ = m.Toggle()
	if m.State() != Paused {
		t.Fatalf("after Toggle: %v", m.State())
	}
	_ = m.Toggle()
	if m.State() != Playing {
		t.Fatalf("after second Toggle: %v", m.State())
	}

	_ = m.Clear()
	if m.State() != Stopped || m.MediaInfo() != nil {
		t.Fatalf("after Clear: state=%v media=%v", m.State(), m.MediaInfo())
	}
}
