package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

func (m Model) memberCount() int {
	if m.day == nil {
		return 0
	}
	return len(m.day.Members)
}

func (m Model) selectedMember() *summary.MemberDay {
	if m.cursor < 0 || m.cursor >= m.memberCount() {
		return nil
	}
	return m.day.Members[m.cursor]
}

func (m Model) stripOptions() view.StripOptions {
	return view.StripOptions{
		Clock:     m.clock,
		CellWidth: m.config.Dial.CellWidth,
		DimNight:  m.config.Dial.DimNight,
		Current:   m.browsing,
	}
}

func (m Model) memberStrip(md *summary.MemberDay) []view.StripCell {
	return view.BuildStrip(md.Window, md.Available, m.stripOptions())
}

// plainMemberLine is the clipboard text for one member.
func (m Model) plainMemberLine(md *summary.MemberDay) string {
	strip := view.PlainStrip(m.memberStrip(md), m.config.Dial.CellWidth)
	return fmt.Sprintf("%s (%s, %s): %s", md.Member.Name, md.Info.Name, md.ZoneLabel(), strings.TrimLeft(strip, " "))
}

// buildTableRows renders the visible member rows.
func (m Model) buildTableRows(visible int) ([][]string, [][]lipgloss.Style) {
	if m.day == nil {
		return nil, nil
	}

	end := min(len(m.day.Members), m.scrollOffset+visible)
	rows := make([][]string, 0, max(0, end-m.scrollOffset))
	styles := make([][]lipgloss.Style, 0, cap(rows))
	for i := m.scrollOffset; i < end; i++ {
		md := m.day.Members[i]
		selected := i == m.cursor

		nameStyle := m.styles.MemberStyle
		if selected {
			nameStyle = m.styles.MemberSelectedStyle
		}
		strip := view.RenderStrip(m.memberStrip(md), m.config.Dial.CellWidth, m.styles.StripStyles(selected))

		name := ansi.Truncate(md.Member.Name, nameColWidth-2, "…")
		zone := ansi.Truncate(md.ZoneLabel(), zoneColWidth-2, "…")
		rows = append(rows, []string{name, zone, strip})
		styles = append(styles, []lipgloss.Style{nameStyle, m.styles.ZoneStyle, m.styles.CellStyle})
	}
	return rows, styles
}

func (m Model) tableHeaders() ([]string, []lipgloss.Style) {
	headers := []string{"Member", "Zone", "Hours"}
	styles := []lipgloss.Style{
		m.styles.TableHeaderStyle.Width(nameColWidth),
		m.styles.TableHeaderStyle.Width(zoneColWidth),
		m.styles.TableHeaderStyle,
	}
	return headers, styles
}
