package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// styleResets are the sequences after which a background must be restored.
var styleResets = []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"}

// PlaceBox places content in a w x h box whose empty space is filled with bg.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content, lipgloss.WithWhitespaceBackground(bg))
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground returns exactly height lines, each short line
// padded to width with bg. Lines wider than width are left alone.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}

	fill := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// KeepBackground re-enters bg after every style reset in line, so nested
// styles inside a modal do not punch holes in its background.
func KeepBackground(line string, bg lipgloss.Color) string {
	seq := BackgroundSeq(bg)
	if seq == "" {
		return line
	}
	for _, reset := range styleResets {
		line = strings.ReplaceAll(line, reset, reset+seq)
	}
	return line
}

// BackgroundSeq returns the SGR sequence that selects bg as background.
func BackgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}

// ClipLines cuts every line of content to at most width cells.
func ClipLines(content string, width int) string {
	if width <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
