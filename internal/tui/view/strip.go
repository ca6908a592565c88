package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/tzbuddy/internal/dial"
)

// CellKind classifies a strip cell for styling.
type CellKind int

const (
	CellPlain CellKind = iota
	CellNight
	CellAvailable
	CellAvailableNight
	CellBoundary
	CellCurrent
)

// StripCell is one hour of a rendered strip.
type StripCell struct {
	Label string
	Title string
	Kind  CellKind
}

// StripOptions controls how a window is turned into cells.
type StripOptions struct {
	Clock     dial.Clock
	CellWidth int
	DimNight  bool
	Current   time.Time // The cell holding this instant is marked current; zero disables
}

// StripStyles holds one style per cell kind.
type StripStyles struct {
	Plain          lipgloss.Style
	Night          lipgloss.Style
	Available      lipgloss.Style
	AvailableNight lipgloss.Style
	Boundary       lipgloss.Style
	Current        lipgloss.Style
}

func (s StripStyles) forKind(kind CellKind) lipgloss.Style {
	switch kind {
	case CellNight:
		return s.Night
	case CellAvailable:
		return s.Available
	case CellAvailableNight:
		return s.AvailableNight
	case CellBoundary:
		return s.Boundary
	case CellCurrent:
		return s.Current
	default:
		return s.Plain
	}
}

// BuildStrip classifies every cell of window. available holds one flag per
// cell; missing flags count as unavailable.
func BuildStrip(window dial.HourWindow, available []bool, opts StripOptions) []StripCell {
	cells := window.Cells()
	out := make([]StripCell, len(cells))
	for i, c := range cells {
		avail := i < len(available) && available[i]
		night := opts.DimNight && dial.IsNightHour(c.Hour)

		kind := CellPlain
		switch {
		case isCurrent(c, opts.Current):
			kind = CellCurrent
		case c.Boundary:
			kind = CellBoundary
		case avail && night:
			kind = CellAvailableNight
		case avail:
			kind = CellAvailable
		case night:
			kind = CellNight
		}

		out[i] = StripCell{
			Label: CellLabel(c, opts.Clock, opts.CellWidth),
			Title: c.Title(),
			Kind:  kind,
		}
	}
	return out
}

func isCurrent(c dial.HourCell, current time.Time) bool {
	if current.IsZero() {
		return false
	}
	local := current.In(c.Date.Location())
	return local.Hour() == c.Hour && sameDay(local, c.Date)
}

// CellLabel fits the cell label into width columns. Date labels fall back to
// shorter forms ("Jan 02", "1/2", "2") before being cut.
func CellLabel(c dial.HourCell, clock dial.Clock, width int) string {
	if width <= 0 {
		return ""
	}
	if c.Boundary {
		for _, layout := range []string{"Jan 02", "1/2", "2"} {
			if label := c.Date.Format(layout); runewidth.StringWidth(label) <= width {
				return label
			}
		}
	}
	return runewidth.Truncate(c.Label(clock), width, "")
}

// RenderStrip renders cells side by side, each centered in width columns.
func RenderStrip(cells []StripCell, width int, styles StripStyles) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(styles.forKind(c.Kind).Width(width).Align(lipgloss.Center).Render(c.Label))
	}
	return sb.String()
}

// PlainStrip renders cells as unstyled text for copying.
func PlainStrip(cells []StripCell, width int) string {
	var sb strings.Builder
	for _, c := range cells {
		label := c.Label
		pad := width - runewidth.StringWidth(label)
		if pad > 0 {
			left := pad / 2
			label = strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
		}
		sb.WriteString(label)
	}
	return strings.TrimRight(sb.String(), " ")
}
