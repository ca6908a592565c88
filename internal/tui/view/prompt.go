package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	promptCursor = "_"
	promptPrefix = "> "
	promptIndent = "  "
)

// DateSuggestion is a date keyword offered under the go-to-date prompt.
type DateSuggestion struct {
	Keyword string // e.g. "tomorrow"
	Preview string // Where the keyword lands, e.g. "Tue Jan 16"
}

// PromptState captures the go-to-date prompt for rendering.
type PromptState struct {
	Value   string
	Focused bool
}

// PromptLines returns the input line followed, while the prompt is focused,
// by one line per suggestion. Everything is wrapped to width.
func PromptLines(state PromptState, width int, suggestions []DateSuggestion) []string {
	value := state.Value
	if state.Focused {
		value += promptCursor
	}
	lines := indentLines(wrapWords(value, width-len(promptPrefix)), promptPrefix)
	if !state.Focused {
		return lines
	}

	for _, s := range suggestions {
		text := s.Keyword
		if s.Preview != "" {
			text += "  " + s.Preview
		}
		lines = append(lines, indentLines(wrapWords(text, width-len(promptIndent)), promptIndent)...)
	}
	return lines
}

// ClampPromptLines keeps at most maxLines lines, marking the cut with an
// ellipsis on the last kept line.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}

	clamped := append([]string(nil), lines[:maxLines]...)
	last := clamped[maxLines-1]
	if width < 3 {
		clamped[maxLines-1] = strings.Repeat(".", max(width, 0))
	} else {
		clamped[maxLines-1] = runewidth.Truncate(last+"...", width, "...")
	}
	return clamped
}

// RenderPrompt renders the prompt box with the provided lines.
func RenderPrompt(width int, style lipgloss.Style, lines []string) string {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return boxed(width, style).Render(strings.Join(lines, "\n"))
}

// RenderPromptPlaceholder renders an empty prompt box of the same height so
// the layout does not jump while a modal hides the prompt.
func RenderPromptPlaceholder(width int, style lipgloss.Style, contentLines int) string {
	return boxed(width, style).Render(strings.Repeat("\n", max(contentLines, 1)-1))
}

// boxed sizes style so its outer width, frame included, is width.
func boxed(width int, style lipgloss.Style) lipgloss.Style {
	frameW, _ := style.GetFrameSize()
	return style.Width(max(width-frameW, 0))
}

// wrapWords breaks s at spaces so no line is wider than width. Words wider
// than width are split. A string that already fits keeps its spacing.
func wrapWords(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		for runewidth.StringWidth(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = word[len(head):]
		}
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}

// indentLines prefixes the first line with prefix and the rest with spaces
// of the same width.
func indentLines(lines []string, prefix string) []string {
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}
