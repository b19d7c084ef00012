package menubar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRender_ContainsEntries(t *testing.T) {
	out := ansi.Strip(Render("", 120))

	for _, want := range []string{"reel", "Open", "Play/Pause", "Fullscreen", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() = %q, missing %q", out, want)
		}
	}
}

func TestRender_ShowsMediaTitle(t *testing.T) {
	out := ansi.Strip(Render("The Big Film", 120))
	if !strings.Contains(out, "The Big Film") {
		t.Errorf("Render() = %q, missing media title", out)
	}
}

func TestRender_NarrowWidth(t *testing.T) {
	if out := Render("x", 10); out != "" {
		t.Errorf("Render() at narrow width = %q, want empty", out)
	}
}
