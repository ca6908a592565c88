package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/config"
	"github.com/javiermolinar/tzbuddy/internal/db"
	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tui/commands"
	"github.com/javiermolinar/tzbuddy/internal/tui/theme"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Go-to-date prompt focused
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone    ModalType = iota
	ModalInsight           // Overlap summary and LLM insight
	ModalInit              // First-run setup
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo     team.Repository
	config   *config.Config
	resolver *tzinfo.Resolver
	now      func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	clock  dial.Clock

	// State
	browsing     time.Time        // Browsing instant in the reference zone
	day          *summary.TeamDay // Dials for the browsing instant
	cursor       int              // Selected member row
	scrollOffset int              // First visible member row
	mode         Mode
	loading      bool

	// Modal state
	modalType      ModalType
	insight        *llm.Insight
	insightLoading bool
	insightErr     string
	initState      InitState
	initError      string

	// Overlay state
	overlay OverlayModel

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.mode = ModeModal
			m.modalType = ModalInit
		}
	}
}

// WithNow overrides the clock used for "today" and the initial browsing instant.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
		m.browsing = m.referenceTime(now())
	}
}

// WithResolver overrides the timezone resolver.
func WithResolver(r *tzinfo.Resolver) ModelOption {
	return func(m *Model) {
		m.resolver = r
		m.browsing = m.referenceTime(m.now())
	}
}

// New creates a new TUI model.
func New(repo team.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "today, next-friday, 2025-03-14 ..."
	ti.CharLimit = 32

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}

	m := &Model{
		repo:     repo,
		config:   cfg,
		resolver: tzinfo.NewResolver(nil),
		now:      time.Now,
		theme:    t,
		styles:   NewStyles(t),
		clock:    dial.ParseClock(cfg.Dial.Clock),
		mode:     ModeNormal,
		prompt:   ti,
		overlay:  NewOverlayModel(),
	}
	m.browsing = m.referenceTime(m.now())

	for _, opt := range opts {
		opt(m)
	}

	m.layoutCache = m.buildLayoutCache(0, 0)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.initState.NeedsInit || m.repo == nil {
		return nil
	}
	return commands.LoadTeam(m.repo, m.loadRequest())
}

// loadRequest describes the team view for the current browsing instant.
func (m Model) loadRequest() commands.LoadRequest {
	return commands.LoadRequest{
		Browsing:  m.browsing,
		Reference: m.config.Browsing.Timezone,
		Resolver:  m.resolver,
	}
}

// referenceTime converts t to the configured reference zone.
func (m Model) referenceTime(t time.Time) time.Time {
	if loc, ok := m.resolver.Location(m.config.Browsing.Timezone); ok {
		return t.In(loc)
	}
	return t
}

// Run starts the TUI.
func Run(repo team.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo team.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			repo, err = db.Open(state.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model := New(repo, cfg, WithInitState(initState))
	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	return err
}
