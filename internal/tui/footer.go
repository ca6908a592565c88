package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// renderSharedLine lists the reference hours in which everyone is available.
func (m Model) renderSharedLine(width int) string {
	if m.day == nil {
		return m.styles.SharedStyle.Render(" ")
	}

	var bar strings.Builder
	bar.WriteString(m.styles.SharedStyle.Render(fmt.Sprintf("Shared (%s): ", m.day.Reference.Name)))

	shared := m.day.SharedHours()
	switch {
	case len(m.day.Members) == 0:
		bar.WriteString(m.styles.SharedStyle.Render("no members"))
	case len(shared) == 0:
		bar.WriteString(m.styles.StatusStyle.Render("none"))
	default:
		parts := make([]string, len(shared))
		for i, h := range shared {
			parts[i] = fmt.Sprintf("%02d:00", h)
		}
		bar.WriteString(m.styles.SharedHoursStyle.Render(strings.Join(parts, " ")))
	}

	if n := len(m.day.Skipped); n > 0 {
		bar.WriteString(m.styles.StatusStyle.Render(fmt.Sprintf("  (%d skipped: unknown timezone)", n)))
	}

	content := bar.String()
	if width > 0 {
		content = ansi.Truncate(content, width, "")
	}
	return content
}

// renderLegend renders swatches for the cell kinds.
func (m Model) renderLegend() string {
	swatch := func(style lipgloss.Style, label string) string {
		return style.Render("  ") + m.styles.LegendStyle.Render(" "+label+"  ")
	}

	var legend strings.Builder
	legend.WriteString(swatch(m.styles.CellAvailableStyle, "available"))
	legend.WriteString(swatch(m.styles.CellAvailableNightStyle, "available at night"))
	legend.WriteString(swatch(m.styles.CellBoundaryStyle, "new day"))
	legend.WriteString(swatch(m.styles.CellCurrentStyle, "browsing hour"))
	return legend.String()
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModePrompt:
		help = "Tab: complete | Enter: go | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalInit:
			help = "Enter: create files | Esc: quit"
		case ModalInsight:
			help = "y: copy | r: retry | Esc: close"
		default:
			help = "Esc: close"
		}
	default:
		help = "h/l: day | H/L: week | [/]: hour | t: today | j/k: member | g: go to | y: copy | i: insight | q: quit"
	}
	return m.styles.HelpStyle.Render(help)
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
