package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// lightThreshold is the background luminance above which a theme counts
// as light.
const lightThreshold = 0.55

// Palette holds the colors the TUI styles are built from.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Available   lipgloss.Color
	Boundary    lipgloss.Color
	Current     lipgloss.Color
	Warning     lipgloss.Color

	AvailableBg      lipgloss.Color // Available hour cell
	AvailableNightBg lipgloss.Color // Available hour cell at night
	SelectedBg       lipgloss.Color // Available hour cell on the selected row
	BoundaryBg       lipgloss.Color // Date label cell
	NightFg          lipgloss.Color // Night hour label

	TextOnAccent    lipgloss.Color
	TextOnAvailable lipgloss.Color
	TextOnBoundary  lipgloss.Color
	TextOnCurrent   lipgloss.Color
	TextOnWarning   lipgloss.Color

	Modal ModalColors
}

// ModalColors holds the colors of modal boxes.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme uses DefaultName.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := isLight(t.Bg)
	availableBg := cellShade(t.Available, t.Bg, light, false)
	boundaryBg := coalesce(t.Boundary, t.BgSelection, t.BgHighlight)
	modalBg := coalesce(t.BgHighlight, t.Bg)
	panel := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Available:   lipgloss.Color(t.Available),
		Boundary:    lipgloss.Color(t.Boundary),
		Current:     lipgloss.Color(t.Current),
		Warning:     lipgloss.Color(t.Warning),

		AvailableBg:      lipgloss.Color(availableBg),
		AvailableNightBg: lipgloss.Color(cellShade(t.Available, t.Bg, light, true)),
		SelectedBg:       lipgloss.Color(selectedShade(availableBg, light)),
		BoundaryBg:       lipgloss.Color(boundaryBg),
		NightFg:          lipgloss.Color(mix(t.FgMuted, t.Bg, 0.35)),

		TextOnAccent:    lipgloss.Color(readableOn(t.Accent, t.Bg, t.Fg)),
		TextOnAvailable: lipgloss.Color(readableOn(availableBg, t.Bg, t.Fg)),
		TextOnBoundary:  lipgloss.Color(readableOn(boundaryBg, t.Bg, t.Fg)),
		TextOnCurrent:   lipgloss.Color(readableOn(t.Current, t.Bg, t.Fg)),
		TextOnWarning:   lipgloss.Color(readableOn(t.Warning, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBg),
			Border:      same(coalesce(t.ModalBorder, t.Accent)),
			Text:        same(t.Fg),
			Muted:       same(t.FgMuted),
			Highlight:   same(coalesce(t.BgSelection, t.Accent)),
			Panel:       same(panel),
			ReverseText: lipgloss.AdaptiveColor{Dark: modalBg, Light: t.Fg},
			Backdrop:    lipgloss.Color(panel),
		},
	}
}

func same(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

func isLight(bg string) bool {
	return luminance(bg) > lightThreshold
}

// cellShade is the background of an available hour cell. Light themes wash
// the accent out towards the background; dark themes darken it, night hours
// more so.
func cellShade(accent, bg string, light, night bool) string {
	switch {
	case light && night:
		return mix(accent, bg, 0.80)
	case light:
		return mix(accent, bg, 0.55)
	case night:
		return scale(accent, 0.30, 30)
	default:
		return scale(accent, 0.50, 40)
	}
}

// selectedShade sets the selected row apart from the other cells.
func selectedShade(hex string, light bool) string {
	if light {
		return mix(hex, "#000000", 0.10)
	}
	return mix(hex, "#ffffff", 0.30)
}

// readableOn returns whichever text color contrasts more with bg, first on a tie.
func readableOn(bg, first, second string) string {
	if contrast(bg, first) >= contrast(bg, second) {
		return first
	}
	return second
}

func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// luminance is the WCAG relative luminance of hex, 0 when it does not parse.
func luminance(hex string) float64 {
	c, ok := parse(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// scale multiplies every channel by factor, keeping it at least floor (0-255).
// Invalid colors are returned unchanged.
func scale(hex string, factor, floor float64) string {
	c, ok := parse(hex)
	if !ok {
		return hex
	}
	channel := func(v float64) float64 { return max(v*factor, floor/255) }
	return colorful.Color{R: channel(c.R), G: channel(c.G), B: channel(c.B)}.Clamped().Hex()
}

// mix blends a towards b by ratio, clamped to [0, 1]. If either color is
// invalid a is returned.
func mix(a, b string, ratio float64) string {
	ca, okA := parse(a)
	cb, okB := parse(b)
	if !okA || !okB {
		return a
	}
	return ca.BlendRgb(cb, min(max(ratio, 0), 1)).Clamped().Hex()
}

func parse(hex string) (colorful.Color, bool) {
	if len(hex) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	return c, err == nil
}
