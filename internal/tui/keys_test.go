package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/tui/commands"
)

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return err
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &copied
}

func TestBrowsingKeys(t *testing.T) {
	tests := []struct {
		key  string
		want time.Time
	}{
		{key: "l", want: testNow.AddDate(0, 0, 1)},
		{key: "h", want: testNow.AddDate(0, 0, -1)},
		{key: "L", want: testNow.AddDate(0, 0, 7)},
		{key: "H", want: testNow.AddDate(0, 0, -7)},
		{key: "]", want: testNow.Add(time.Hour)},
		{key: "[", want: testNow.Add(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := loadedModel(t)
			updated, cmd := m.Update(key(tt.key))
			got := updated.(Model)

			if !got.browsing.Equal(tt.want) {
				t.Errorf("browsing = %v, want %v", got.browsing, tt.want)
			}
			if !got.loading {
				t.Error("expected loading while the team reloads")
			}
			if cmd == nil {
				t.Fatal("expected a reload command")
			}
			loaded, ok := cmd().(commands.TeamLoadedMsg)
			if !ok || !loaded.Browsing.Equal(tt.want) {
				t.Errorf("reload msg = %+v", loaded)
			}
		})
	}
}

func TestTodayKeyReturnsToNow(t *testing.T) {
	m := loadedModel(t)
	m = update(t, m, key("L"))
	m = update(t, m, key("t"))

	if !m.browsing.Equal(testNow) {
		t.Errorf("browsing = %v, want %v", m.browsing, testNow)
	}
}

func TestMemberCursorStaysInBounds(t *testing.T) {
	m := loadedModel(t)

	m = update(t, m, key("k"))
	if m.cursor != 0 {
		t.Errorf("cursor after k at top = %d", m.cursor)
	}
	m = update(t, m, key("j"))
	m = update(t, m, key("j"))
	if m.cursor != 1 {
		t.Errorf("cursor after jj = %d, want 1", m.cursor)
	}
	if got := m.selectedMember().Member.Name; got != "Grace" {
		t.Errorf("selected = %s, want Grace", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestPromptGoToDateKeepsTimeOfDay(t *testing.T) {
	m := loadedModel(t)

	m = update(t, m, key("g"))
	if m.mode != ModePrompt {
		t.Fatalf("mode = %v, want prompt", m.mode)
	}
	m = update(t, m, key("tomorrow"))
	if m.prompt.Value() != "tomorrow" {
		t.Fatalf("prompt value = %q", m.prompt.Value())
	}

	m = update(t, m, key("enter"))
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal after submit", m.mode)
	}
	want := time.Date(2024, 1, 16, 10, 30, 0, 0, time.UTC)
	if !m.browsing.Equal(want) {
		t.Errorf("browsing = %v, want %v", m.browsing, want)
	}
}

func TestPromptAutocompleteWithTab(t *testing.T) {
	m := loadedModel(t)
	m = update(t, m, key("g"))
	m = update(t, m, key("tomo"))
	m = update(t, m, key("tab"))

	if m.prompt.Value() != "tomorrow" {
		t.Errorf("prompt value = %q, want tomorrow", m.prompt.Value())
	}
}

func TestPromptUnknownDate(t *testing.T) {
	m := loadedModel(t)
	m = update(t, m, key("g"))
	m = update(t, m, key("someday"))
	m = update(t, m, key("enter"))

	if !m.browsing.Equal(testNow) {
		t.Errorf("browsing moved to %v", m.browsing)
	}
	if !strings.Contains(m.statusMsg, `Unknown date "someday"`) {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestPromptEscCancels(t *testing.T) {
	m := loadedModel(t)
	m = update(t, m, key("g"))
	m = update(t, m, key("esc"))

	if m.mode != ModeNormal || m.prompt.Value() != "" {
		t.Errorf("mode = %v value = %q", m.mode, m.prompt.Value())
	}
}

func TestCopySelectedStrip(t *testing.T) {
	copied := stubClipboard(t, nil)
	m := loadedModel(t)

	m = update(t, m, key("y"))
	if !strings.HasPrefix(*copied, "Ada (UTC") {
		t.Errorf("copied = %q", *copied)
	}
	if !strings.Contains(*copied, "09") {
		t.Errorf("copied strip should list hours, got %q", *copied)
	}
	if m.statusMsg != "Copied Ada's hours" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestCopySelectedStripFailure(t *testing.T) {
	stubClipboard(t, errors.New("no display"))
	m := loadedModel(t)

	m = update(t, m, key("y"))
	if m.statusMsg != "Copy failed: no display" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestInsightModalLifecycle(t *testing.T) {
	m := loadedModel(t)

	updated, cmd := m.Update(key("i"))
	m = updated.(Model)
	if m.mode != ModeModal || m.modalType != ModalInsight {
		t.Fatalf("mode = %v modal = %v, want insight modal", m.mode, m.modalType)
	}
	if !m.insightLoading || cmd == nil {
		t.Fatal("expected insight request to start")
	}

	// A key press while loading must not start a second request.
	updated, cmd = m.Update(key("r"))
	if cmd != nil {
		t.Error("retry while loading should be ignored")
	}
	m = updated.(Model)

	m = update(t, m, commands.InsightMsg{Day: m.day, Browsing: m.browsing})
	if m.insightLoading {
		t.Error("expected loading to finish")
	}

	copied := stubClipboard(t, nil)
	m = update(t, m, key("y"))
	if !strings.Contains(*copied, "SHARED HOURS") || !strings.Contains(*copied, "14:00, 15:00, 16:00") {
		t.Errorf("copied = %q", *copied)
	}

	m = update(t, m, key("esc"))
	if m.mode != ModeNormal || m.modalType != ModalNone {
		t.Errorf("mode = %v modal = %v after esc", m.mode, m.modalType)
	}
}

func TestInsightNeedsLoadedTeam(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, key("i"))

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if m.statusMsg != "Team not loaded yet" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}
