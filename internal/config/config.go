// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/tui/theme"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// Cell width bounds for the dial.
const (
	MinCellWidth = 3
	MaxCellWidth = 8
)

// Config holds the application configuration.
type Config struct {
	Browsing BrowsingConfig `toml:"browsing"`
	Dial     DialConfig     `toml:"dial"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// BrowsingConfig holds the reference timezone every dial is aligned to.
type BrowsingConfig struct {
	Timezone string `toml:"timezone"` // IANA name or "Local"
}

// DialConfig holds hour strip rendering settings.
type DialConfig struct {
	Clock     string `toml:"clock"`      // "24h" or "12h"
	CellWidth int    `toml:"cell_width"` // Terminal columns per hour cell
	DimNight  bool   `toml:"dim_night"`  // Mute hours between 22:00 and 05:59
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "copilot", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Browsing: BrowsingConfig{
			Timezone: "Local",
		},
		Dial: DialConfig{
			Clock:     "24h",
			CellWidth: 4,
			DimNight:  true,
		},
		LLM: LLMConfig{
			Provider: "copilot",
			Model:    "gpt-4o",
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tzbuddy.db"
	}
	return filepath.Join(home, ".local", "share", "tzbuddy", "tzbuddy.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tzbuddy", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the file at path onto cfg. A missing file is not
// an error; an unknown key is.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// envOverrides maps environment variables onto the fields they replace.
// Values that do not parse leave the field alone.
var envOverrides = map[string]func(*Config, string){
	"TZBUDDY_TIMEZONE":     func(c *Config, v string) { c.Browsing.Timezone = v },
	"TZBUDDY_CLOCK":        func(c *Config, v string) { c.Dial.Clock = v },
	"TZBUDDY_CELL_WIDTH":   func(c *Config, v string) { parseInto(&c.Dial.CellWidth, v, strconv.Atoi) },
	"TZBUDDY_DIM_NIGHT":    func(c *Config, v string) { parseInto(&c.Dial.DimNight, v, strconv.ParseBool) },
	"TZBUDDY_LLM_PROVIDER": func(c *Config, v string) { c.LLM.Provider = v },
	"TZBUDDY_LLM_MODEL":    func(c *Config, v string) { c.LLM.Model = v },
	"TZBUDDY_LLM_BASE_URL": func(c *Config, v string) { c.LLM.BaseURL = v },
	"TZBUDDY_DB_PATH":      func(c *Config, v string) { c.Storage.DBPath = v },
	"TZBUDDY_UI_THEME":     func(c *Config, v string) { c.UI.Theme = v },
}

func parseInto[T any](dst *T, v string, parse func(string) (T, error)) {
	if parsed, err := parse(v); err == nil {
		*dst = parsed
	}
}

// applyEnvOverrides applies the set TZBUDDY_* variables, which take
// precedence over the file.
func applyEnvOverrides(cfg *Config) {
	for name, apply := range envOverrides {
		if v := os.Getenv(name); v != "" {
			apply(cfg, v)
		}
	}
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !tzinfo.NewResolver(nil).Valid(c.Browsing.Timezone) {
		return fmt.Errorf("unknown browsing timezone %q", c.Browsing.Timezone)
	}
	if c.Dial.Clock != "24h" && c.Dial.Clock != "12h" {
		return fmt.Errorf("clock must be \"24h\" or \"12h\", got %q", c.Dial.Clock)
	}
	if c.Dial.CellWidth < MinCellWidth || c.Dial.CellWidth > MaxCellWidth {
		return fmt.Errorf("cell_width must be between %d and %d, got %d", MinCellWidth, MaxCellWidth, c.Dial.CellWidth)
	}
	if c.Dial.Clock == "12h" && c.Dial.CellWidth < 4 {
		return errors.New("12h clock needs cell_width of at least 4")
	}
	if !slices.Contains(llm.Providers(), llm.NormalizeProvider(c.LLM.Provider)) {
		return fmt.Errorf("unknown llm provider %q (available: %s)", c.LLM.Provider, strings.Join(llm.Providers(), ", "))
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm model must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to path, creating its directory. The
// file is replaced atomically so a crash never leaves half a config.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config file: %w", err)
	}
	return nil
}
