package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case commands.TeamLoadedMsg:
		// A slower load for an instant we already left
		if !msg.Browsing.Equal(m.browsing) {
			return m, nil
		}
		m.day = msg.Day
		m.loading = false
		if m.cursor >= m.memberCount() {
			m.cursor = max(0, m.memberCount()-1)
		}
		m.ensureCursorVisible()
		LogTeamLoaded(msg.Day)
		return m, nil

	case commands.InsightStartedMsg:
		m.statusMsg = "Asking for an insight..."
		return m, nil

	case commands.InsightMsg:
		if !m.awaitingInsight(msg.Browsing) {
			return m, nil
		}
		m.insightLoading = false
		m.statusMsg = ""
		if msg.Day != nil {
			m.insight = msg.Day.Insight
		}
		return m, nil

	case commands.InsightErrMsg:
		LogError("insight", msg.Err)
		if !m.awaitingInsight(msg.Browsing) {
			return m, nil
		}
		m.insightLoading = false
		m.insightErr = msg.Err.Error()
		m.statusMsg = ""
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		// A failed load for an instant we already left
		if !msg.Browsing.IsZero() && !msg.Browsing.Equal(m.browsing) {
			return m, nil
		}
		m.err = msg.Err
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = m.now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = m.now().Add(3 * time.Second)
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle prompt input when in prompt mode
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		m.relayout()
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// awaitingInsight reports whether an insight result for browsing is still
// wanted: a request is in flight and the user has not moved since.
func (m Model) awaitingInsight(browsing time.Time) bool {
	return m.insightLoading && browsing.Equal(m.browsing)
}
