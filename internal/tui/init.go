package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/config"
	"github.com/javiermolinar/tzbuddy/internal/db"
	"github.com/javiermolinar/tzbuddy/internal/tui/commands"
)

// InitState tracks whether the config file or team database must be created
// before the dials can load.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState reports which of the config file and the database are
// missing on disk.
func DetectInitState(cfg *config.Config) (InitState, error) {
	s := InitState{ConfigPath: config.DefaultConfigPath(), DBPath: cfg.Storage.DBPath}

	var err error
	if s.ConfigMissing, err = pathMissing(s.ConfigPath); err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	if s.DBMissing, err = pathMissing(s.DBPath); err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}
	s.NeedsInit = s.ConfigMissing || s.DBMissing
	return s, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}

// createStorage writes the default config if it is missing and opens the
// team database, creating it on the way.
func (m Model) createStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
	}
	if m.repo != nil {
		return m, nil
	}

	repo, err := db.Open(m.initState.DBPath)
	if err != nil {
		return m, fmt.Errorf("initializing database: %w", err)
	}
	m.repo = repo
	return m, nil
}

// handleInitKeys handles the first-run modal: enter creates storage, esc quits.
func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "n":
		return m, tea.Quit
	case "enter", "y":
	default:
		return m, nil
	}

	m, err := m.createStorage()
	if err != nil {
		LogError("create_storage", err)
		m.initError = err.Error()
		return m, nil
	}

	LogModeChange(m.mode, ModeNormal, "storage_created")
	m.initState = InitState{}
	m.initError = ""
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.loading = true
	m.statusMsg = "Initialized. Add teammates with `tzbuddy member add`."
	return m, commands.LoadTeam(m.repo, m.loadRequest())
}
