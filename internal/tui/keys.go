package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/tui/commands"
	"github.com/javiermolinar/tzbuddy/internal/tui/input"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation
	case "h", "left":
		return m.browseTo(m.browsing.AddDate(0, 0, -1), "prev_day")
	case "l", "right":
		return m.browseTo(m.browsing.AddDate(0, 0, 1), "next_day")
	case "H", "shift+left":
		return m.browseTo(m.browsing.AddDate(0, 0, -7), "prev_week")
	case "L", "shift+right":
		return m.browseTo(m.browsing.AddDate(0, 0, 7), "next_week")
	case "[":
		return m.browseTo(m.browsing.Add(-time.Hour), "prev_hour")
	case "]":
		return m.browseTo(m.browsing.Add(time.Hour), "next_hour")
	case "t":
		return m.browseTo(m.referenceTime(m.now()), "today")

	// Member selection
	case "j", "down":
		if m.cursor < m.memberCount()-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}

	// Actions
	case "g", "/":
		LogModeChange(m.mode, ModePrompt, "goto_date")
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		m.relayout()
		return m, textinput.Blink
	case "y":
		return m.copySelectedStrip()
	case "i":
		return m.openInsight()
	}
	return m, nil
}

// handlePromptKeys handles the go-to-date prompt.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.relayout()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.relayout()
	return m, cmd
}

func (m *Model) closePrompt() {
	LogModeChange(m.mode, ModeNormal, "prompt_closed")
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.relayout()
}

// handleModalKeys routes keys to the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalInit:
		return m.handleInitKeys(msg)
	case ModalInsight:
		return m.handleInsightKeys(msg)
	default:
		if msg.String() == "esc" {
			m.mode = ModeNormal
			m.modalType = ModalNone
		}
	}
	return m, nil
}

func (m Model) handleInsightKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.insightLoading {
			return m, nil
		}
		text := view.InsightCopyText(m.insightLines())
		if err := writeClipboard(text); err != nil {
			m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.statusMsg = "Copied overlap summary"
		return m, nil
	case "r":
		if m.insightLoading {
			return m, nil
		}
		return m.openInsight()
	case "esc", "enter", "q":
		LogModeChange(m.mode, ModeNormal, "insight_closed")
		m.mode = ModeNormal
		m.modalType = ModalNone
		if m.insightLoading {
			m.insightLoading = false
			m.statusMsg = ""
		}
		return m, nil
	}
	return m, nil
}

// browseTo moves the browsing instant and reloads the dials.
func (m Model) browseTo(at time.Time, reason string) (tea.Model, tea.Cmd) {
	m.browsing = m.referenceTime(at)
	m.loading = true
	m.insight = nil
	m.insightErr = ""
	m.insightLoading = false
	LogBrowsing(m.browsing, reason)
	if m.repo == nil {
		return m, nil
	}
	return m, commands.LoadTeam(m.repo, m.loadRequest())
}

// openInsight shows the insight modal and asks the LLM for a reading.
func (m Model) openInsight() (tea.Model, tea.Cmd) {
	if m.repo == nil || m.day == nil {
		m.statusMsg = "Team not loaded yet"
		return m, nil
	}
	LogModeChange(m.mode, ModeModal, "insight")
	m.mode = ModeModal
	m.modalType = ModalInsight
	m.insight = nil
	m.insightErr = ""
	if len(m.day.Members) == 0 {
		return m, nil
	}
	m.insightLoading = true
	return m, tea.Batch(
		func() tea.Msg { return commands.InsightStartedMsg{} },
		commands.Insight(m.config, m.repo, m.loadRequest()),
	)
}

// copySelectedStrip copies the selected member's strip as plain text.
func (m Model) copySelectedStrip() (tea.Model, tea.Cmd) {
	md := m.selectedMember()
	if md == nil {
		m.statusMsg = "No member selected"
		return m, nil
	}

	text := m.plainMemberLine(md)
	if err := writeClipboard(text); err != nil {
		LogError("clipboard", err)
		m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("Copied %s's hours", md.Member.Name)
	m.statusTime = m.now().Add(3 * time.Second)
	return m, commands.ClearStatusAfter(3 * time.Second)
}
