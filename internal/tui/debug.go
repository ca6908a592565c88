package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/tzbuddy/internal/summary"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "tzbuddy-debug.log"

var (
	debugMu   sync.Mutex
	debugLog  = zerolog.Nop()
	debugFile *os.File
)

// InitDebugLogger opens the debug log when enabled. A disabled logger
// discards every event.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		setDebugWriter(nil)
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugMu.Lock()
	debugFile = f
	debugMu.Unlock()
	setDebugWriter(f)

	debugLog.Info().Str("log_file", DebugLogPath).Msg("debug_start")
	return nil
}

// setDebugWriter points the debug logger at w, or disables it when w is nil.
func setDebugWriter(w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if w == nil {
		debugLog = zerolog.Nop()
		return
	}
	debugLog = zerolog.New(w).With().Timestamp().Logger()
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	debugMu.Lock()
	f := debugFile
	debugFile = nil
	debugMu.Unlock()

	if f == nil {
		return
	}
	debugLog.Info().Msg("debug_end")
	setDebugWriter(nil)
	_ = f.Close()
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug().Str("key", msg.String()).Msg("key_press")
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	debugLog.Debug().
		Str("from", modeString(from)).
		Str("to", modeString(to)).
		Str("reason", reason).
		Msg("mode_change")
}

// LogBrowsing logs a change of the browsing instant.
func LogBrowsing(at time.Time, reason string) {
	debugLog.Debug().
		Time("browsing", at).
		Str("zone", at.Location().String()).
		Str("reason", reason).
		Msg("browse")
}

// LogTeamLoaded logs a freshly built team day.
func LogTeamLoaded(day *summary.TeamDay) {
	if day == nil {
		return
	}
	event := debugLog.Debug().
		Str("date", day.Date.Format("2006-01-02")).
		Str("reference", day.Reference.Name).
		Int("members", len(day.Members)).
		Int("skipped", len(day.Skipped)).
		Ints("shared_hours", day.SharedHours())
	event.Msg("team_loaded")
}

// LogError logs an error with the operation that produced it.
func LogError(op string, err error) {
	debugLog.Error().Str("op", op).Err(err).Msg("error")
}

func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePrompt:
		return "prompt"
	case ModeModal:
		return "modal"
	default:
		return "unknown"
	}
}
