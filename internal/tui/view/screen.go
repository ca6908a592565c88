// Package view renders the tzbuddy TUI from plain view state. Nothing here
// reads the model, so every function can be tested with literal input.
package view

import "github.com/charmbracelet/lipgloss"

const (
	loadingText  = "Loading..."
	tooSmallText = "Terminal too small"
)

// OverlayRenderer draws a modal box on top of the base screen.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// Screen holds the rendered sections of one frame.
type Screen struct {
	Width    int
	Height   int
	TooSmall bool // No room for the sections; they are left empty
	Header   string
	Grid     string
	Footer   string
	AppStyle lipgloss.Style
	Bg       lipgloss.Color
	Modal    string // Empty when no modal is open
	Overlay  OverlayRenderer
}

// RenderScreen stacks header, grid and footer, fills the terminal with the
// background and draws the modal on top when one is open.
func RenderScreen(s Screen) string {
	if s.Width == 0 || s.Height == 0 {
		return loadingText
	}

	base := tooSmallText
	if !s.TooSmall {
		body := lipgloss.JoinVertical(lipgloss.Left, s.Header, s.Grid, s.Footer)
		base = PadLinesWithBackground(s.AppStyle.Render(body), s.Width, s.Height, s.Bg)
	}

	if s.Modal != "" && s.Overlay != nil {
		return s.Overlay.Render(base, s.Width, s.Height, s.Modal)
	}
	return base
}
