// Package overlay draws floating blocks on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block over base with its top-left corner at (row, col).
// The base is padded to width so the block can extend over short lines.
// Both strings may contain ANSI escape sequences.
func Place(base, block string, row, col, width int) string {
	if block == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")

	for i, blockLine := range blockLines {
		y := row + i
		if y < 0 || y >= len(baseLines) {
			continue
		}

		blockWidth := ansi.StringWidth(blockLine)
		if blockWidth == 0 {
			continue
		}

		baseLine := baseLines[y]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		end := col + blockWidth
		result := ansi.Cut(baseLine, 0, col) + blockLine
		if end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		baseLines[y] = result
	}

	return strings.Join(baseLines, "\n")
}

// Center draws block centered within a base of the given dimensions.
func Center(base, block string, width, height int) string {
	if block == "" {
		return base
	}

	blockLines := strings.Split(block, "\n")
	blockHeight := len(blockLines)
	blockWidth := 0
	for _, line := range blockLines {
		if w := ansi.StringWidth(line); w > blockWidth {
			blockWidth = w
		}
	}

	row := max((height-blockHeight)/2, 0)
	col := max((width-blockWidth)/2, 0)
	return Place(base, block, row, col, width)
}
