package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCenterCell(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{label: "9", width: 4, want: " 9  "},
		{label: "10", width: 4, want: " 10 "},
		{label: "Jan 15", width: 4, want: "Jan "},
		{label: "", width: 3, want: "   "},
	}

	for _, tt := range tests {
		if got := centerCell(tt.label, tt.width); got != tt.want {
			t.Errorf("centerCell(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}

func TestFormatStrip(t *testing.T) {
	disableColor(t)

	cells := []view.StripCell{
		{Label: "1/15", Kind: view.CellBoundary},
		{Label: "9", Kind: view.CellAvailable},
		{Label: "23", Kind: view.CellNight},
	}
	if got, want := FormatStrip(cells, 4), "1/15 9   23 "; got != want {
		t.Errorf("FormatStrip = %q, want %q", got, want)
	}
}

func TestPrintDialRowsAlignsColumns(t *testing.T) {
	disableColor(t)

	rows := []DialRow{
		{Name: "Ada", Zone: "UTC +0", Cells: []view.StripCell{{Label: "9"}}},
		{Name: "Grace", Zone: "EST -5", Cells: []view.StripCell{{Label: "4"}}},
	}
	var out bytes.Buffer
	PrintDialRows(&out, rows, StripOpts{CellWidth: 3})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Ada    UTC +0   9 " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Grace  EST -5   4 " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours([]int{9, 10, 23}); got != "09:00 10:00 23:00" {
		t.Errorf("FormatHours = %q", got)
	}
	if got := FormatHours(nil); got != "" {
		t.Errorf("FormatHours(nil) = %q, want empty", got)
	}
}

func TestPrintOverlap(t *testing.T) {
	disableColor(t)

	day := &summary.TeamDay{
		Members: []*summary.MemberDay{
			{Member: &team.Member{Name: "Ada"}},
			{Member: &team.Member{Name: "Grace"}},
		},
		Overlap: []summary.HourOverlap{
			{Hour: 9, Members: []string{"Ada"}},
			{Hour: 14, Members: []string{"Ada", "Grace"}},
			{Hour: 22},
		},
		Skipped: []*team.Member{{Name: "Ken", Timezone: "Moon/Base"}},
	}

	var out bytes.Buffer
	PrintOverlap(&out, day)
	got := out.String()

	for _, want := range []string{"Shared: 14:00", "09:00  1/2  Ada", `Skipped Ken: unknown timezone "Moon/Base"`} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "22:00") {
		t.Errorf("hours nobody shares should be omitted:\n%s", got)
	}
}

func TestPrintOverlap_NoSharedHour(t *testing.T) {
	disableColor(t)

	day := &summary.TeamDay{
		Members: []*summary.MemberDay{
			{Member: &team.Member{Name: "Ada"}},
			{Member: &team.Member{Name: "Ken"}},
		},
		Overlap: []summary.HourOverlap{{Hour: 9, Members: []string{"Ada"}}},
	}

	var out bytes.Buffer
	PrintOverlap(&out, day)
	if !strings.Contains(out.String(), "no hour works for everyone") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	PrintOverlap(&out, &summary.TeamDay{})
	if !strings.Contains(out.String(), "No members with a known timezone") {
		t.Errorf("unexpected empty-team output:\n%s", out.String())
	}
}

func TestPrintInsightWrapped(t *testing.T) {
	disableColor(t)

	text := "Best hours: 14:00 to 16:00 UTC.\n\n- Grace starts early at 09:00 New York time on Monday"
	var out bytes.Buffer
	PrintInsightWrapped(&out, text, 30)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[0] != "  Best hours: 14:00 to 16:00" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[2] != "" {
		t.Errorf("expected blank line to be kept, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "    • Grace") {
		t.Errorf("bullet line = %q", lines[3])
	}
	for _, l := range lines[4:] {
		if !strings.HasPrefix(l, "      ") {
			t.Errorf("continuation %q not indented under bullet", l)
		}
	}
}

func TestFitCellWidth(t *testing.T) {
	tests := []struct {
		configured, chrome, width int
		want                      int
	}{
		{configured: 4, chrome: 20, width: 200, want: 4},
		{configured: 4, chrome: 15, width: 80, want: 3},
		{configured: 6, chrome: 20, width: 20, want: 3},
	}

	for _, tt := range tests {
		if got := fitCellWidth(tt.configured, tt.chrome, tt.width); got != tt.want {
			t.Errorf("fitCellWidth(%d, %d, %d) = %d, want %d", tt.configured, tt.chrome, tt.width, got, tt.want)
		}
	}
}

func TestDialTitle(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, ny)

	got := dialTitle(at, dial.TimezoneInfo{Name: "America/New_York", Abbreviation: "EST"})
	if got != "Mon Jan 15, 2024  America/New_York (EST)" {
		t.Errorf("dialTitle = %q", got)
	}
}

func TestFormatWindow(t *testing.T) {
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		end  time.Time
		want string
	}{
		{end: start.Add(8 * time.Hour), want: "Mon 2024-01-15 09:00-17:00"},
		{end: start.Add(15 * time.Hour), want: "Mon 2024-01-15 09:00-24:00"},
		{end: start.Add(18 * time.Hour), want: "Mon 2024-01-15 09:00-Tue 03:00"},
	}

	for _, tt := range tests {
		w := &team.Availability{Start: start, End: tt.end}
		if got := formatWindow(w); got != tt.want {
			t.Errorf("formatWindow(%v) = %q, want %q", tt.end, got, tt.want)
		}
	}
}
