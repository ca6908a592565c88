package tui

import "github.com/charmbracelet/lipgloss"

// Row budget of the boxed layout.
const (
	headerHeight  = 1
	footerCompact = 2 // Status and help only

	footerBaseLines       = 4 // Shared, legend, status and help
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 14 // Shorter screens get the compact footer

	tableChromeLines = 4 // Top border, header, header rule, bottom border
)

// LayoutCache stores the section sizes and footer styles for one window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	FooterH int
	GridH   int

	FooterAuxStyle lipgloss.Style
	StatusAuxStyle lipgloss.Style
	HelpAuxStyle   lipgloss.Style

	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

// VisibleRows returns how many member rows fit in the grid.
func (l LayoutCache) VisibleRows() int {
	return max(0, l.GridH-tableChromeLines)
}

// PromptRows returns how many prompt lines fit in the footer.
func (l LayoutCache) PromptRows() int {
	return max(promptMinContentLines, l.FooterH-footerBaseLines-promptBorderLines)
}

// footerHeight grows the full footer with the prompt, leaving the grid at
// least two rows.
func footerHeight(innerH, promptLines int) int {
	if innerH < footerFullMinHeight {
		return footerCompact
	}
	want := footerBaseLines + promptBorderLines + max(promptMinContentLines, promptLines)
	return min(want, innerH-headerHeight-2)
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appW, appH := m.styles.AppStyle.GetFrameSize()
	promptFrameW, _ := m.styles.PromptStyle.GetFrameSize()

	l := LayoutCache{
		InnerW:  max(0, width-appW),
		InnerH:  max(0, height-appH),
		HeaderH: headerHeight,
	}
	l.PromptContentWidth = max(0, l.InnerW-promptFrameW)
	l.FooterH = footerHeight(l.InnerH, len(m.promptLines(l.PromptContentWidth)))
	l.GridH = max(2, l.InnerH-l.FooterH-headerHeight)

	fill := lipgloss.NewStyle().Background(m.styles.colorBg)
	l.FooterAuxStyle = fill.Width(l.InnerW)
	l.StatusAuxStyle = m.styles.StatusStyle.Inherit(l.FooterAuxStyle)
	l.HelpAuxStyle = m.styles.HelpStyle.Inherit(fill.Padding(0, 1).Width(max(0, l.InnerW-2)))
	l.PromptStyle = m.styles.PromptStyle.Width(l.PromptContentWidth)
	l.PromptFocusedStyle = m.styles.PromptFocusedStyle.Width(l.PromptContentWidth)
	return l
}

// relayout recomputes the layout after the window or prompt changes.
func (m *Model) relayout() {
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the member rows so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.layoutCache.VisibleRows()
	switch {
	case visible <= 0:
		m.scrollOffset = 0
	case m.cursor < m.scrollOffset:
		m.scrollOffset = m.cursor
	case m.cursor >= m.scrollOffset+visible:
		m.scrollOffset = m.cursor - visible + 1
	}
	m.scrollOffset = max(m.scrollOffset, 0)
}
