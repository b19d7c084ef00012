package osd

import (
	"github.com/charmbracelet/lipgloss"

	"reel/internal/ui/styles"
)

// Icon returns the glyph shown before the message text.
func Icon(kind Kind) string {
	switch kind {
	case KindPlay:
		return "▶"
	case KindPause:
		return "⏸"
	case KindSeekForward:
		return "⏩"
	case KindSeekBack:
		return "⏪"
	case KindVolume:
		return "🔊"
	case KindSubtitle:
		return "💬"
	case KindError:
		return "✗"
	default:
		return ""
	}
}

// Render draws the message as a bordered badge, or "" when inactive.
func (m *Model) Render() string {
	if !m.Active() {
		return ""
	}

	t := styles.T()
	fg := t.FgBase
	if m.kind == KindError {
		fg = t.Error
	}

	text := m.text
	if icon := Icon(m.kind); icon != "" {
		text = icon + " " + text
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(t.BgBase).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(text)
}
