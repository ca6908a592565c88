package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles used by modal frames and their buttons.
type ModalStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Body         lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
}

// ModalFrame is the content of one modal box.
type ModalFrame struct {
	Title    string
	Subtitle string // Shown after the title, e.g. the browsing date
	Body     string
	Buttons  []string // Key hints; the first is highlighted
}

// RenderModal draws a modal box: header, body and button row separated by
// blank lines.
func RenderModal(f ModalFrame, s ModalStyles) string {
	header := s.Title.Render(f.Title)
	if f.Subtitle != "" {
		header += s.Body.Render("  ") + s.Subtitle.Render(f.Subtitle)
	}

	parts := []string{s.Header.Render(header)}
	if f.Body != "" {
		parts = append(parts, f.Body)
	}
	if len(f.Buttons) > 0 {
		parts = append(parts, s.Footer.Render(RenderButtons(s, f.Buttons...)))
	}
	return s.Frame.Render(strings.Join(parts, "\n\n"))
}

// RenderButtons renders key hints as buttons, highlighting the first.
func RenderButtons(s ModalStyles, labels ...string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := s.Button
		if i == 0 {
			style = s.ActiveButton
		}
		parts[i] = style.Padding(0, 1).Render(label)
	}
	return strings.Join(parts, s.Body.Render(" "))
}

// InsightButtons are the key hints of the overlap modal. Copy is offered
// only once there is something to copy.
func InsightButtons(canCopy bool) []string {
	if canCopy {
		return []string{"[y] Copy", "[Esc] Close"}
	}
	return []string{"[Esc] Close"}
}

// InitButtons are the key hints of the first-run modal.
func InitButtons() []string {
	return []string{"[Enter] Allow", "[Esc] Quit"}
}
