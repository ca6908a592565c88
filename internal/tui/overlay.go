package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
	overlayMaxWidth  = modalWidth + 4
	overlayMaxHeight = 28
)

// OverlayModel paints an opaque backdrop box over the hour table and centers
// modal content inside it.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes a hidden overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Show makes the overlay visible with the given backdrop color.
func (o *OverlayModel) Show(bg lipgloss.Color) {
	o.active = true
	o.bgColor = bg
}

// Hide removes the overlay.
func (o *OverlayModel) Hide() {
	o.active = false
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// Render draws the overlay on top of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	contentW, contentH := contentSize(contentLines)

	boxW, boxH := o.boxSize(width, height)
	boxW = min(max(boxW, contentW), width)
	boxH = min(max(boxH, contentH), height)
	if boxW <= 0 || boxH <= 0 {
		return base
	}

	top := max(0, (height-boxH)/2)
	left := max(0, (width-boxW)/2)

	baseLines := normalizeBase(base, width, height)
	box := o.fillLines(boxW, boxH)
	box = o.placeContent(box, contentLines, boxW, boxH)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}
		baseLine := baseLines[row]
		lines = append(lines, ansi.Cut(baseLine, 0, left)+box[row-top]+ansi.Cut(baseLine, left+boxW, width))
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) boxSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	boxW := min(max(width*2/3, overlayMinWidth), overlayMaxWidth, width)
	boxH := min(max(height/2, overlayMinHeight), overlayMaxHeight, height)
	return boxW, boxH
}

func (o OverlayModel) fillLines(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	line := view.BackgroundSeq(o.bgColor) + strings.Repeat(" ", width) + ansi.ResetStyle
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

func (o OverlayModel) placeContent(lines, content []string, width, height int) []string {
	contentW, contentH := contentSize(content)
	if len(lines) == 0 || contentW == 0 || contentH == 0 {
		return lines
	}
	contentW = min(contentW, width)
	contentH = min(contentH, height)

	top := max(0, (height-contentH)/2)
	left := max(0, (width-contentW)/2)
	rightPad := max(0, width-left-contentW)

	bgSeq := view.BackgroundSeq(o.bgColor)
	for i := 0; i < contentH && top+i < len(lines); i++ {
		line := content[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentW {
			line = ansi.Cut(line, 0, contentW)
			lineWidth = contentW
		}
		line += strings.Repeat(" ", contentW-lineWidth)
		line = view.KeepBackground(line, o.bgColor)

		lines[top+i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}
	return lines
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

func contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth, len(lines)
}

func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		switch {
		case lineWidth > width:
			lines[i] = ansi.Cut(line, 0, width)
		case lineWidth < width:
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	return lines
}
