package controlbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func activeState() State {
	return State{
		Playing:  true,
		Title:    "clip",
		Position: 30 * time.Second,
		Duration: 2 * time.Minute,
		Volume:   50,
		Subtitle: "Off",
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{45 * time.Second, "0:45"},
		{2*time.Minute + 3*time.Second, "2:03"},
		{time.Hour + 4*time.Minute + 5*time.Second, "1:04:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderProgress_ContainsTimes(t *testing.T) {
	out := ansi.Strip(RenderProgress(activeState(), 60))
	if !strings.Contains(out, "0:30") || !strings.Contains(out, "2:00") {
		t.Errorf("RenderProgress() = %q, missing times", out)
	}
	if !strings.Contains(out, "▓") || !strings.Contains(out, "░") {
		t.Errorf("RenderProgress() = %q, missing bar cells", out)
	}
}

func TestRenderControls_ShowsVolumeAndTitle(t *testing.T) {
	s := activeState()
	s.Volume = 120
	s.Subtitle = "English"

	out := ansi.Strip(Render(s, 80))
	if !strings.Contains(out, "120%") {
		t.Errorf("Render() = %q, missing volume", out)
	}
	if !strings.Contains(out, "clip") {
		t.Errorf("Render() = %q, missing title", out)
	}
	if !strings.Contains(out, "English") {
		t.Errorf("Render() = %q, missing subtitle track", out)
	}
}

func TestRenderControls_Inactive(t *testing.T) {
	out := ansi.Strip(Render(State{}, 60))
	if !strings.Contains(out, "Ctrl+O") {
		t.Errorf("Render() inactive = %q, missing open hint", out)
	}
}

func TestProgressHitTest(t *testing.T) {
	s := activeState()
	width := 60

	// Click at the start of the bar is near zero.
	start := 5 // "0:30" + space
	pos, ok := ProgressHitTest(s, width, start)
	if !ok {
		t.Fatal("hit at bar start missed")
	}
	if pos > 5*time.Second {
		t.Errorf("position at bar start = %v, want near 0", pos)
	}

	// Click near the end maps near the duration.
	barWidth := progressBarWidth(s, width)
	pos, ok = ProgressHitTest(s, width, start+barWidth-1)
	if !ok {
		t.Fatal("hit at bar end missed")
	}
	if pos < s.Duration-10*time.Second {
		t.Errorf("position at bar end = %v, want near %v", pos, s.Duration)
	}

	// Clicks outside the bar miss.
	if _, ok := ProgressHitTest(s, width, 0); ok {
		t.Error("hit on the position label should miss")
	}
	if _, ok := ProgressHitTest(s, width, width-1); ok {
		t.Error("hit on the duration label should miss")
	}
}

func TestProgressHitTest_NoMedia(t *testing.T) {
	if _, ok := ProgressHitTest(State{}, 60, 10); ok {
		t.Error("hit test with no media should miss")
	}
}
