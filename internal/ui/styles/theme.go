package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Amber - active controls, playing state
	Secondary lipgloss.Color // Blue - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Bar backgrounds
	BgCursor lipgloss.Color // Selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused borders
	BorderFocus lipgloss.Color // Focused borders

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color // Red - errors
	Warning lipgloss.Color // Yellow - warnings

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Playing lipgloss.Style // Active playback indicator
	Cursor  lipgloss.Style // Selection background highlight
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	// Warm amber accent
	Primary:   lipgloss.Color("#f59e0b"),
	Secondary: lipgloss.Color("#60a5fa"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#878787"),
	FgSubtle: lipgloss.Color("#4e4e4e"),

	// Backgrounds
	BgBase:   lipgloss.Color("#121212"),
	BgCursor: lipgloss.Color("#2e2e2e"),

	// Borders
	Border:      lipgloss.Color("#4e4e4e"),
	BorderFocus: lipgloss.Color("#f59e0b"),

	// Status
	Success: lipgloss.Color("#34d399"),
	Error:   lipgloss.Color("#f87171"),
	Warning: lipgloss.Color("#fbbf24"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
