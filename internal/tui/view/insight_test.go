package view

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/team"
)

func sampleDay() *summary.TeamDay {
	return &summary.TeamDay{
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Reference: dial.TimezoneInfo{Name: "UTC", Abbreviation: "UTC"},
		Members: []*summary.MemberDay{
			{Member: &team.Member{Name: "Ada"}},
			{Member: &team.Member{Name: "Grace"}},
			{Member: &team.Member{Name: "Lin"}},
		},
		Overlap: []summary.HourOverlap{
			{Hour: 9, Members: []string{"Ada"}},
			{Hour: 13, Members: []string{"Ada", "Grace"}},
			{Hour: 14, Members: []string{"Ada", "Grace", "Lin"}},
		},
		Skipped: []*team.Member{{Name: "Zed", Timezone: "Mars/Olympus"}},
	}
}

func texts(lines []InsightLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestBuildInsightLines(t *testing.T) {
	lines := BuildInsightLines(InsightState{
		Day:     sampleDay(),
		Insight: &llm.Insight{Summary: "Early afternoon UTC works.", BestHours: []int{14}},
	})

	want := []string{
		"Mon Jan 15, 2024 · UTC",
		"",
		"SHARED HOURS",
		"14:00",
		"",
		"PARTIAL OVERLAP",
		"13:00  2/3  Ada, Grace",
		"Skipped Zed: unknown timezone Mars/Olympus",
		"",
		"INSIGHT",
		"Early afternoon UTC works.",
		"Best hours: 14:00",
	}
	if diff := cmp.Diff(want, texts(lines)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if lines[7].Style != InsightLineWarning {
		t.Errorf("skipped line style = %d, want warning", lines[7].Style)
	}
}

func TestBuildInsightLines_States(t *testing.T) {
	tests := []struct {
		name  string
		state InsightState
		want  string
		style InsightLineStyle
	}{
		{name: "loading", state: InsightState{Day: sampleDay(), Loading: true}, want: "Asking the model...", style: InsightLineMeta},
		{name: "error", state: InsightState{Day: sampleDay(), Err: "provider down"}, want: "provider down", style: InsightLineWarning},
		{name: "not asked", state: InsightState{Day: sampleDay()}, want: "Press i to ask for an insight", style: InsightLineMeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := BuildInsightLines(tt.state)
			last := lines[len(lines)-1]
			if last.Text != tt.want || last.Style != tt.style {
				t.Errorf("last line = %+v, want %q style %d", last, tt.want, tt.style)
			}
		})
	}
}

func TestBuildInsightLines_NoOverlap(t *testing.T) {
	day := sampleDay()
	day.Overlap = day.Overlap[:1]

	lines := BuildInsightLines(InsightState{Day: day})
	if lines[3].Text != "No hour works for everyone" || lines[3].Style != InsightLineWarning {
		t.Errorf("line 3 = %+v", lines[3])
	}

	if got := BuildInsightLines(InsightState{}); got[0].Text != "No team loaded" {
		t.Errorf("nil day line = %+v", got[0])
	}
}

func TestRenderInsightBodyWraps(t *testing.T) {
	lines := []InsightLine{{Text: "alpha beta gamma"}}
	out := RenderInsightBody(lines, 10, InsightStyles{})
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 wrapped rows, got %q", rows)
	}
	if strings.TrimRight(rows[0], " ") != "alpha beta" {
		t.Errorf("row 0 = %q", rows[0])
	}
}

func TestInsightCopyText(t *testing.T) {
	lines := []InsightLine{{Text: "SHARED HOURS"}, {Text: "14:00"}, {}}
	if got := InsightCopyText(lines); got != "SHARED HOURS\n14:00" {
		t.Errorf("InsightCopyText() = %q", got)
	}
}
