package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// overlayAt draws fg over bg with its top-left corner at column x, row y.
// Columns are counted in visible cells, skipping ANSI escape sequences.
func overlayAt(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// centerOverlay draws fg centered over bg.
func centerOverlay(bg, fg string) string {
	x := max((lipgloss.Width(bg)-lipgloss.Width(fg))/2, 0)
	y := max((lipgloss.Height(bg)-lipgloss.Height(fg))/2, 0)
	return overlayAt(bg, fg, x, y)
}

func splice(line, insert string, x int) string {
	runes := []rune(line)
	width := lipgloss.Width(insert)

	var prefix strings.Builder
	i, col := 0, 0
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			i = copyEscape(&prefix, runes, i)
			continue
		}
		prefix.WriteRune(runes[i])
		col++
		i++
	}
	for ; col < x; col++ {
		prefix.WriteByte(' ')
	}

	for skipped := 0; i < len(runes) && skipped < width; {
		if runes[i] == '\x1b' {
			i = copyEscape(nil, runes, i)
			continue
		}
		skipped++
		i++
	}

	// Reset styles so the background's colors do not bleed into the overlay.
	return prefix.String() + "\x1b[0m" + insert + string(runes[i:])
}

// copyEscape writes the escape sequence starting at runes[i] to b, which may
// be nil, and returns the index after it.
func copyEscape(b *strings.Builder, runes []rune, i int) int {
	start := i
	i++
	for i < len(runes) {
		r := runes[i]
		i++
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			break
		}
	}
	if b != nil {
		b.WriteString(string(runes[start:i]))
	}
	return i
}
