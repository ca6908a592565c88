package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TeamTable is the team grid: one row per member, one column per field.
type TeamTable struct {
	Width        int
	Height       int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Rows         [][]string
	CellStyles   [][]lipgloss.Style
	BorderStyle  lipgloss.Style
	Bg           lipgloss.Color
}

// RenderTeamTable draws the grid. Columns keep their natural width so hour
// strips never wrap; anything past Width is cut at the right edge.
func RenderTeamTable(tt TeamTable) string {
	if tt.Height <= 0 || len(tt.Headers) == 0 {
		return ""
	}

	t := table.New().
		Headers(tt.Headers...).
		Rows(tt.Rows...).
		Height(tt.Height).
		Border(lipgloss.RoundedBorder()).
		BorderRow(false).
		BorderStyle(tt.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleAt(tt.HeaderStyles, col)
			}
			if row < 0 || row >= len(tt.CellStyles) {
				return lipgloss.NewStyle()
			}
			return styleAt(tt.CellStyles[row], col)
		})

	return PlaceBox(tt.Width, tt.Height, lipgloss.Top, ClipLines(t.Render(), tt.Width), tt.Bg)
}

func styleAt(styles []lipgloss.Style, i int) lipgloss.Style {
	if i < 0 || i >= len(styles) {
		return lipgloss.NewStyle()
	}
	return styles[i]
}
