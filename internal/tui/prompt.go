package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/dateutil"
	"github.com/javiermolinar/tzbuddy/internal/tui/input"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

var promptCommands = input.DateCommands()

// promptLines lays out the prompt with a preview of where each matching
// keyword would jump.
func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:   m.prompt.Value(),
		Focused: m.mode == ModePrompt,
	}

	matches := input.PromptMatchingCommands(state.Value, promptCommands)
	if len(matches) == 0 {
		return view.PromptLines(state, contentWidth, nil)
	}

	today := m.referenceTime(m.now())
	suggestions := make([]view.DateSuggestion, 0, len(matches))
	for _, cmd := range matches {
		s := view.DateSuggestion{Keyword: cmd.Name}
		if date, err := dateutil.ParseBrowsingDate(cmd.Name, today); err == nil {
			s.Preview = date.Format("Mon Jan 2")
		}
		suggestions = append(suggestions, s)
	}
	return view.PromptLines(state, contentWidth, suggestions)
}

// handlePromptSubmit jumps to the typed date, keeping the browsing time of day.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if value == "" {
		return m, nil
	}

	today := m.referenceTime(m.now())
	date, err := dateutil.ParseBrowsingDate(value, today)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Unknown date %q", value)
		m.statusTime = m.now().Add(3 * time.Second)
		return m, nil
	}

	target := time.Date(date.Year(), date.Month(), date.Day(),
		m.browsing.Hour(), m.browsing.Minute(), 0, 0, today.Location())
	return m.browseTo(target, "prompt")
}
