// internal/ui/menubar/menubar.go
package menubar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reel/internal/ui/render"
	"reel/internal/ui/styles"
)

// Height is the fixed height of the menu bar (single line).
const Height = 1

// entry represents a menu bar entry.
type entry struct {
	key  string
	name string
}

// entries are the always-available menu entries.
var entries = []entry{
	{"^O", "Open"},
	{"Space", "Play/Pause"},
	{"F", "Fullscreen"},
	{"S", "Subtitles"},
	{"C", "Clear"},
	{"^Q", "Quit"},
}

// Render returns the menu bar string for the given width.
// mediaTitle is shown on the right when media is loaded.
func Render(mediaTitle string, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	nameStyle := t.S().Muted
	separator := t.S().Subtle.Render(" │ ")

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, keyStyle.Render(e.key)+" "+nameStyle.Render(e.name))
	}

	brand := styles.ApplyBoldGradient("reel", t.Primary, t.Secondary)
	left := brand + "  " + strings.Join(parts, separator)

	right := ""
	if mediaTitle != "" {
		maxTitle := max(width-lipgloss.Width(left)-2, 0)
		if maxTitle >= 8 {
			right = t.S().Title.Render(render.TruncateEllipsis(mediaTitle, maxTitle))
		}
	}

	if right == "" {
		return left
	}
	return render.Row(left, right, width)
}
