package keymap

import "testing"

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionPlayPause},
		{"space", ActionPlayPause},
		{"right", ActionSeekForward},
		{"left", ActionSeekBack},
		{"up", ActionVolumeUp},
		{"down", ActionVolumeDown},
		{"f", ActionToggleFullscreen},
		{"f11", ActionToggleFullscreen},
		{"esc", ActionExitFullscreen},
		{"s", ActionCycleSubtitle},
		{"c", ActionClear},
		{"ctrl+o", ActionOpenFile},
		{"ctrl+q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"z", Action("")},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionToggleFullscreen)
	if len(keys) != 2 {
		t.Fatalf("KeysFor(toggle_fullscreen) = %v, want 2 keys", keys)
	}
	if keys[0] != "f" || keys[1] != "f11" {
		t.Errorf("KeysFor(toggle_fullscreen) = %v, want [f f11]", keys)
	}
}

func TestResolver_KeysFor_Deduplicates(t *testing.T) {
	bindings := []Binding{
		{Keys: []string{"x"}, Action: ActionClear, Context: "global"},
		{Keys: []string{"x", "y"}, Action: ActionClear, Context: "playback"},
	}
	r := NewResolver(bindings)

	keys := r.KeysFor(ActionClear)
	if len(keys) != 2 {
		t.Errorf("KeysFor(clear) = %v, want [x y]", keys)
	}
}

func TestByContext(t *testing.T) {
	playback := ByContext("playback")
	if len(playback) == 0 {
		t.Fatal("ByContext(playback) returned no bindings")
	}
	for _, b := range playback {
		if b.Context != "playback" {
			t.Errorf("binding %v has context %q, want playback", b.Keys, b.Context)
		}
	}
}
