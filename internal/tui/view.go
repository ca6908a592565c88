package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	layout := m.layoutCache
	screen := view.Screen{
		Width:    m.width,
		Height:   m.height,
		TooSmall: layout.InnerW <= 0 || layout.InnerH <= 0,
		AppStyle: m.styles.AppStyle,
		Bg:       m.styles.colorBg,
		Overlay:  m.overlay,
	}
	if !screen.TooSmall {
		screen.Header = view.PlaceBox(layout.InnerW, layout.HeaderH, lipgloss.Top, m.renderHeader(layout.InnerW), m.styles.colorBg)
		screen.Grid = m.renderGrid(layout)
		screen.Footer = view.RenderFooter(m.footerModel(layout))
	}

	if m.mode == ModeModal && m.modalType != ModalNone {
		screen.Modal = m.renderModal()
		m.overlay.Show(m.styles.ModalBackdropColor)
		screen.Overlay = m.overlay
	} else {
		m.overlay.Hide()
	}
	return view.RenderScreen(screen)
}

func (m Model) renderHeader(width int) string {
	reference := dial.TimezoneInfo{Name: m.config.Browsing.Timezone}
	if m.day != nil {
		reference = m.day.Reference
	}
	style := m.styles.TitleStyle
	if sameDay(m.browsing, m.referenceTime(m.now())) {
		style = m.styles.TitleTodayStyle
	}
	line := view.HeaderLine(m.browsing, m.now(), reference) + "  " + m.browsing.Format("15:04")
	if m.loading {
		line += "  [Loading...]"
	}
	return view.ClipLines(style.Render(line), width)
}

func (m Model) renderGrid(layout LayoutCache) string {
	if m.day != nil && len(m.day.Members) == 0 {
		empty := m.styles.LegendStyle.Render("No teammates yet. Add one with `tzbuddy member add <name> <timezone>`.")
		return view.PlaceBox(layout.InnerW, layout.GridH, lipgloss.Top, view.ClipLines(empty, layout.InnerW), m.styles.colorBg)
	}
	if m.day == nil {
		return ""
	}

	headers, headerStyles := m.tableHeaders()
	rows, cellStyles := m.buildTableRows(layout.VisibleRows())
	return view.RenderTeamTable(view.TeamTable{
		Width:        layout.InnerW,
		Height:       layout.GridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Rows:         rows,
		CellStyles:   cellStyles,
		BorderStyle:  m.styles.BorderStyle,
		Bg:           m.styles.colorBg,
	})
}

func (m Model) footerModel(layout LayoutCache) view.FooterModel {
	contentWidth := layout.PromptContentWidth
	lines := view.ClampPromptLines(m.promptLines(contentWidth), layout.PromptRows(), contentWidth)

	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		FullFooter:       layout.FooterH >= footerMinHeight,
		SharedLine:       m.renderSharedLine(layout.InnerW),
		LegendText:       m.renderLegend(),
		StatusText:       m.statusMsgOrDefault(),
		HelpText:         m.renderHelp(),
		PromptLines:      lines,
		PromptMax:        layout.PromptRows(),
		PromptFocus:      m.mode == ModePrompt,
		ShowPrompt:       m.mode != ModeModal || m.modalType == ModalNone,
		FooterStyle:      layout.FooterAuxStyle,
		StatusStyle:      layout.StatusAuxStyle,
		HelpStyle:        layout.HelpAuxStyle,
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}
