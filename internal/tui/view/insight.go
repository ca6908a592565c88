package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/summary"
)

// InsightLineStyle selects how a line of the insight modal is styled.
type InsightLineStyle int

const (
	InsightLineText InsightLineStyle = iota
	InsightLineMeta
	InsightLineSection
	InsightLineWarning
)

// InsightLine is one logical line of the insight modal.
type InsightLine struct {
	Text  string
	Style InsightLineStyle
}

// InsightStyles holds the styles for each line kind.
type InsightStyles struct {
	Text    lipgloss.Style
	Meta    lipgloss.Style
	Section lipgloss.Style
	Warning lipgloss.Style
}

func (s InsightStyles) forLine(style InsightLineStyle) lipgloss.Style {
	switch style {
	case InsightLineMeta:
		return s.Meta
	case InsightLineSection:
		return s.Section
	case InsightLineWarning:
		return s.Warning
	default:
		return s.Text
	}
}

// InsightState is what the insight modal shows.
type InsightState struct {
	Day     *summary.TeamDay
	Insight *llm.Insight
	Loading bool
	Err     string
}

// BuildInsightLines lays out the overlap summary followed by the model's reading.
func BuildInsightLines(state InsightState) []InsightLine {
	day := state.Day
	if day == nil {
		return []InsightLine{{Text: "No team loaded", Style: InsightLineWarning}}
	}

	lines := []InsightLine{
		{Text: fmt.Sprintf("%s · %s", day.Date.Format("Mon Jan 2, 2006"), day.Reference.Name), Style: InsightLineMeta},
		{},
		{Text: "SHARED HOURS", Style: InsightLineSection},
	}

	shared := day.SharedHours()
	switch {
	case len(day.Members) == 0:
		lines = append(lines, InsightLine{Text: "No members yet", Style: InsightLineWarning})
	case len(shared) == 0:
		lines = append(lines, InsightLine{Text: "No hour works for everyone", Style: InsightLineWarning})
	default:
		lines = append(lines, InsightLine{Text: hourList(shared)})
	}

	if partial := partialOverlap(day); len(partial) > 0 {
		lines = append(lines, InsightLine{}, InsightLine{Text: "PARTIAL OVERLAP", Style: InsightLineSection})
		lines = append(lines, partial...)
	}

	for _, m := range day.Skipped {
		lines = append(lines, InsightLine{
			Text:  fmt.Sprintf("Skipped %s: unknown timezone %s", m.Name, m.Timezone),
			Style: InsightLineWarning,
		})
	}

	lines = append(lines, InsightLine{}, InsightLine{Text: "INSIGHT", Style: InsightLineSection})
	switch {
	case state.Loading:
		lines = append(lines, InsightLine{Text: "Asking the model...", Style: InsightLineMeta})
	case state.Err != "":
		lines = append(lines, InsightLine{Text: state.Err, Style: InsightLineWarning})
	case state.Insight != nil:
		for _, text := range strings.Split(state.Insight.String(), "\n") {
			lines = append(lines, InsightLine{Text: text})
		}
	default:
		lines = append(lines, InsightLine{Text: "Press i to ask for an insight", Style: InsightLineMeta})
	}

	return lines
}

// partialOverlap lists hours where at least two members, but not all, are free.
func partialOverlap(day *summary.TeamDay) []InsightLine {
	total := len(day.Members)
	var lines []InsightLine
	for _, o := range day.Overlap {
		if len(o.Members) < 2 || len(o.Members) == total {
			continue
		}
		lines = append(lines, InsightLine{
			Text: fmt.Sprintf("%02d:00  %d/%d  %s", o.Hour, len(o.Members), total, strings.Join(o.Members, ", ")),
		})
	}
	return lines
}

func hourList(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}

// RenderInsightBody wraps and styles lines to width.
func RenderInsightBody(lines []InsightLine, width int, styles InsightStyles) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		style := styles.forLine(line.Style)
		for _, wrapped := range wrapWords(line.Text, width) {
			out = append(out, style.Width(width).Render(wrapped))
		}
	}
	return strings.Join(out, "\n")
}

// InsightCopyText returns the modal content as plain text.
func InsightCopyText(lines []InsightLine) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Text
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
