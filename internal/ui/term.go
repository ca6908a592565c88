package ui

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const defaultTermWidth = 80

// Cell colors of the plain-text dial. They mirror the TUI legend.
var (
	colorAvailable      = color.New(color.FgBlack, color.BgGreen)
	colorAvailableNight = color.New(color.FgGreen, color.Faint)
	colorBoundary       = color.New(color.FgCyan, color.Bold)
	colorCurrent        = color.New(color.FgYellow, color.ReverseVideo) // Reads as a cursor
	colorNight          = color.New(color.FgWhite, color.Faint)
)

// Text formatters for everything around the dial.
var (
	formatHeader  = color.New(color.Bold).SprintFunc()
	formatShared  = color.New(color.FgGreen, color.Bold).SprintFunc()
	formatInsight = color.New(color.FgYellow).SprintFunc()
	formatWarning = color.New(color.FgRed).SprintFunc()
	formatMuted   = color.New(color.FgWhite, color.Faint).SprintFunc()
)

// termWidth returns the width of stdout, then $COLUMNS, then 80 columns.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}
