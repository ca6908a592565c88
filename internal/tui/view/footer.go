package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel is everything the footer shows under the team grid.
type FooterModel struct {
	InnerW     int
	FooterH    int
	FullFooter bool // Compact footers keep only status and help
	SharedLine string
	LegendText string
	StatusText string
	HelpText   string

	PromptLines []string
	PromptMax   int
	PromptFocus bool
	ShowPrompt  bool

	FooterStyle      lipgloss.Style
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	VAlign           lipgloss.Position
	Bg               lipgloss.Color
}

// RenderFooter renders the footer, or nothing when it has no height.
func RenderFooter(f FooterModel) string {
	if f.FooterH <= 0 {
		return ""
	}

	status := fitLine(f.InnerW, f.StatusStyle, f.StatusText)
	help := fitLine(f.InnerW, f.HelpStyle, f.HelpText)
	lines := []string{status, help}
	if f.FullFooter {
		lines = []string{
			f.SharedLine,
			fitLine(f.InnerW, f.FooterStyle, f.LegendText),
			f.promptBox(),
			status,
			help,
		}
	}

	return PlaceBox(f.InnerW, f.FooterH, f.VAlign, strings.Join(lines, "\n"), f.Bg)
}

// promptBox keeps the prompt's height even while a modal hides it.
func (f FooterModel) promptBox() string {
	if !f.ShowPrompt {
		return RenderPromptPlaceholder(f.InnerW, f.PromptStyle, f.PromptMax)
	}
	style := f.PromptStyle
	if f.PromptFocus {
		style = f.PromptFocusStyle
	}
	return RenderPrompt(f.InnerW, style, f.PromptLines)
}

// fitLine renders content in style, truncated so the line is width wide.
func fitLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	inner := max(width-frameW, 0)
	if inner > 0 {
		content = ansi.Truncate(content, inner, "")
	}
	return style.Width(inner).Render(content)
}
