package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

// DialRow is one printed strip.
type DialRow struct {
	Name  string
	Zone  string // Zone label, e.g. "EST -5"
	Cells []view.StripCell
}

// StripOpts configures strip printing.
type StripOpts struct {
	CellWidth int
	NameWidth int // 0 = widest name
	ZoneWidth int // 0 = widest zone label
}

// cellColor returns the color for a cell kind, or nil for plain cells.
func cellColor(kind view.CellKind) *color.Color {
	switch kind {
	case view.CellAvailable:
		return colorAvailable
	case view.CellAvailableNight:
		return colorAvailableNight
	case view.CellBoundary:
		return colorBoundary
	case view.CellCurrent:
		return colorCurrent
	case view.CellNight:
		return colorNight
	default:
		return nil
	}
}

// centerCell pads label to width columns, the odd column going right.
func centerCell(label string, width int) string {
	pad := width - runewidth.StringWidth(label)
	if pad <= 0 {
		return runewidth.Truncate(label, width, "")
	}
	left := pad / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
}

// FormatStrip renders cells side by side with terminal colors.
func FormatStrip(cells []view.StripCell, width int) string {
	var sb strings.Builder
	for _, c := range cells {
		text := centerCell(c.Label, width)
		if col := cellColor(c.Kind); col != nil {
			text = col.Sprint(text)
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// PrintDialRows prints one line per row with aligned name and zone columns.
func PrintDialRows(out io.Writer, rows []DialRow, opts StripOpts) {
	nameW, zoneW := opts.NameWidth, opts.ZoneWidth
	for _, r := range rows {
		if opts.NameWidth == 0 {
			nameW = max(nameW, runewidth.StringWidth(r.Name))
		}
		if opts.ZoneWidth == 0 {
			zoneW = max(zoneW, runewidth.StringWidth(r.Zone))
		}
	}

	for _, r := range rows {
		name := runewidth.FillRight(runewidth.Truncate(r.Name, nameW, "…"), nameW)
		zone := runewidth.FillRight(runewidth.Truncate(r.Zone, zoneW, "…"), zoneW)
		fmt.Fprintf(out, "%s  %s  %s\n", formatHeader(name), formatMuted(zone), FormatStrip(r.Cells, opts.CellWidth))
	}
}

// FormatHours formats reference hours as "09:00 10:00".
func FormatHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, " ")
}

// PrintOverlap prints shared and partial overlap for a team day.
func PrintOverlap(out io.Writer, day *summary.TeamDay) {
	shared := day.SharedHours()
	switch {
	case len(day.Members) == 0:
		fmt.Fprintln(out, formatWarning("  No members with a known timezone."))
	case len(shared) == 0:
		fmt.Fprintf(out, "  Shared: %s\n", formatWarning("no hour works for everyone"))
	default:
		fmt.Fprintf(out, "  Shared: %s\n", formatShared(FormatHours(shared)))
	}

	total := len(day.Members)
	for _, o := range day.Overlap {
		if len(o.Members) == 0 || len(o.Members) == total {
			continue
		}
		fmt.Fprintf(out, "  %02d:00  %d/%d  %s\n", o.Hour, len(o.Members), total, formatMuted(strings.Join(o.Members, ", ")))
	}

	for _, m := range day.Skipped {
		fmt.Fprintf(out, "  %s\n", formatWarning(fmt.Sprintf("Skipped %s: unknown timezone %q", m.Name, m.Timezone)))
	}
}

// PrintInsightWrapped formats and prints insight text preserving structure.
func PrintInsightWrapped(out io.Writer, text string, width int) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			fmt.Fprintln(out)
			continue
		}

		prefix, content, contentWidth := parseInsightLine(trimmed, width)
		wrapAndPrint(out, content, prefix, contentWidth)
	}
}

// parseInsightLine returns the prefix, content and wrap width for a line.
func parseInsightLine(trimmed string, width int) (prefix, content string, contentWidth int) {
	prefix = "  "
	content = trimmed
	contentWidth = width - 2

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		prefix = "    • "
		content = strings.TrimSpace(trimmed[2:])
		contentWidth = width - 6
	}
	return prefix, content, contentWidth
}

// wrapAndPrint wraps text to width and prints with the given prefix.
func wrapAndPrint(out io.Writer, text, prefix string, width int) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	continuation := strings.Repeat(" ", runewidth.StringWidth(prefix))
	linePrefix := prefix
	line := ""
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			fmt.Fprintln(out, formatInsight(linePrefix+line))
			linePrefix = continuation
			line = word
		}
	}
	fmt.Fprintln(out, formatInsight(linePrefix+line))
}
