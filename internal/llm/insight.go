package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const insightSystemPrompt = `You help distributed teams pick meeting times. Reply with JSON only, no markdown, no extra text.`

const insightPromptTemplate = `Below is a team's availability for %s, shown in the %s timezone.
Each member line lists the reference hours in which the member is available,
followed by the member's own local hour in brackets.

%s
Hours where everyone is available: %s

Reply with exactly this JSON shape:
{"summary": "<one or two sentences>", "best_hours": [<reference hours, best first, at most 3>], "stretched": ["<member names working outside 08-20 local>"]}

Rules:
- best_hours must only contain hours listed above
- Prefer hours that keep everyone between 08 and 20 local
- If nobody overlaps, say so in the summary and return an empty best_hours
- Keep the summary under 200 characters`

// MemberHours describes one member's availability on the browsing day.
type MemberHours struct {
	Name       string
	Timezone   string
	Offset     string // Offset from the reference zone, e.g. "+5"
	Hours      []int  // Reference hours in which the member is available
	LocalHours []int  // Member-local hour for each entry in Hours
}

// TeamDay is the input to TeamInsight.
type TeamDay struct {
	Date      time.Time
	Reference string
	Members   []MemberHours
	Shared    []int
}

// Insight is the model's reading of a team day.
type Insight struct {
	Summary   string   `json:"summary"`
	BestHours []int    `json:"best_hours"`
	Stretched []string `json:"stretched"`
}

// String renders the insight as plain lines.
func (i *Insight) String() string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(i.Summary))
	if len(i.BestHours) > 0 {
		fmt.Fprintf(&sb, "\nBest hours: %s", formatHours(i.BestHours))
	}
	if len(i.Stretched) > 0 {
		fmt.Fprintf(&sb, "\nStretched: %s", strings.Join(i.Stretched, ", "))
	}
	return sb.String()
}

// Insighter asks an LLM to summarise how a team's hours overlap.
type Insighter struct {
	client Client
}

// NewInsighter creates an Insighter backed by client.
func NewInsighter(client Client) *Insighter {
	return &Insighter{client: client}
}

// TeamInsight returns the model's summary of day. Best hours the model
// invents outside the shared or available hours are dropped.
func (in *Insighter) TeamInsight(ctx context.Context, day TeamDay) (*Insight, error) {
	if len(day.Members) == 0 {
		return nil, errors.New("no members to describe")
	}

	prompt := fmt.Sprintf(insightPromptTemplate,
		day.Date.Format("Mon Jan 2, 2006"),
		day.Reference,
		formatMembers(day.Members),
		formatHours(day.Shared),
	)

	var insight Insight
	err := in.client.ChatJSON(ctx, []Message{
		{Role: RoleSystem, Content: insightSystemPrompt},
		{Role: RoleUser, Content: prompt},
	}, &insight)
	if err != nil {
		return nil, fmt.Errorf("requesting team insight: %w", err)
	}

	insight.BestHours = keepKnownHours(insight.BestHours, day)
	return &insight, nil
}

func formatMembers(members []MemberHours) string {
	var sb strings.Builder
	for _, m := range members {
		fmt.Fprintf(&sb, "- %s (%s, %s):", m.Name, m.Timezone, m.Offset)
		if len(m.Hours) == 0 {
			sb.WriteString(" unavailable\n")
			continue
		}
		for i, h := range m.Hours {
			local := h
			if i < len(m.LocalHours) {
				local = m.LocalHours[i]
			}
			fmt.Fprintf(&sb, " %02d[%02d]", h, local)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatHours(hours []int) string {
	if len(hours) == 0 {
		return "none"
	}
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}

func keepKnownHours(hours []int, day TeamDay) []int {
	known := make(map[int]bool)
	for _, h := range day.Shared {
		known[h] = true
	}
	for _, m := range day.Members {
		for _, h := range m.Hours {
			known[h] = true
		}
	}

	var out []int
	for _, h := range hours {
		if known[h] {
			out = append(out, h)
		}
	}
	return out
}
