// Package tui provides the terminal user interface for tzbuddy.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tzbuddy/internal/tui/theme"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

// Name and zone column widths.
const (
	nameColWidth = 14
	zoneColWidth = 12
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorAvailable   lipgloss.Color
	colorBoundary    lipgloss.Color
	colorCurrent     lipgloss.Color
	colorWarning     lipgloss.Color

	// Title line above the table
	TitleStyle      lipgloss.Style
	TitleTodayStyle lipgloss.Style

	// Table columns
	TableHeaderStyle    lipgloss.Style
	MemberStyle         lipgloss.Style
	MemberSelectedStyle lipgloss.Style
	ZoneStyle           lipgloss.Style
	BorderStyle         lipgloss.Style

	// Hour strip cells
	CellStyle                  lipgloss.Style
	CellNightStyle             lipgloss.Style
	CellAvailableStyle         lipgloss.Style
	CellAvailableNightStyle    lipgloss.Style
	CellAvailableSelectedStyle lipgloss.Style
	CellBoundaryStyle          lipgloss.Style
	CellCurrentStyle           lipgloss.Style

	// Footer
	SharedStyle        lipgloss.Style
	SharedHoursStyle   lipgloss.Style
	LegendStyle        lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalWarningStyle      lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorAvailable = palette.Available
	s.colorBoundary = palette.Boundary
	s.colorCurrent = palette.Current
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)
	s.TitleTodayStyle = s.TitleStyle.
		Foreground(s.colorAccent)

	s.TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.MemberStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(nameColWidth).
		Padding(0, 1)
	s.MemberSelectedStyle = s.MemberStyle.
		Foreground(s.colorBg).
		Background(s.colorAccent).
		Bold(true)

	s.ZoneStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Width(zoneColWidth).
		Padding(0, 1)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// Hour strip cells
	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)
	s.CellNightStyle = s.CellStyle.
		Foreground(palette.NightFg)
	s.CellAvailableStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAvailable).
		Background(palette.AvailableBg)
	s.CellAvailableNightStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAvailable).
		Background(palette.AvailableNightBg)
	s.CellAvailableSelectedStyle = s.CellAvailableStyle.
		Background(palette.SelectedBg).
		Bold(true)
	s.CellBoundaryStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnBoundary).
		Background(palette.BoundaryBg).
		Bold(true)
	s.CellCurrentStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnCurrent).
		Background(s.colorCurrent).
		Bold(true)

	// Footer
	s.SharedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)
	s.SharedHoursStyle = s.SharedStyle.
		Foreground(s.colorAvailable).
		Bold(true)
	s.LegendStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modalBg)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// StripStyles returns the cell styles for one member row.
func (s *Styles) StripStyles(selected bool) view.StripStyles {
	available := s.CellAvailableStyle
	if selected {
		available = s.CellAvailableSelectedStyle
	}
	return view.StripStyles{
		Plain:          s.CellStyle,
		Night:          s.CellNightStyle,
		Available:      available,
		AvailableNight: s.CellAvailableNightStyle,
		Boundary:       s.CellBoundaryStyle,
		Current:        s.CellCurrentStyle,
	}
}

// InsightStyles returns the styles for the insight modal body.
func (s *Styles) InsightStyles() view.InsightStyles {
	return view.InsightStyles{
		Text:    s.ModalBodyStyle,
		Meta:    s.ModalMetaStyle,
		Section: s.ModalSectionTitleStyle,
		Warning: s.ModalWarningStyle,
	}
}
