// Package theme loads the color themes of the TUI and derives the palette
// the styles are built from.
package theme

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "mocha"

// ErrUnknownTheme is returned by Load for a name with no embedded theme.
var ErrUnknownTheme = errors.New("unknown theme")

//go:embed embedded/*.toml
var embedded embed.FS

// Theme is one embedded color scheme. Every value is a "#rrggbb" string.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"`
	BgSelection string `toml:"bg_selection"`
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"`
	Accent      string `toml:"accent"`
	Available   string `toml:"available"` // Hours inside an availability window
	Boundary    string `toml:"boundary"`  // Date label cells
	Current     string `toml:"current"`   // Browsing hour marker
	Warning     string `toml:"warning"`

	ModalBorder string `toml:"modal_border"` // Defaults to Accent
}

// Load reads the named theme. Names are case-insensitive and "" selects
// DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}

	data, err := embedded.ReadFile(path.Join("embedded", name+".toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	return &t, nil
}

// Available lists the embedded theme names in alphabetical order.
func Available() []string {
	entries, err := embedded.ReadDir("embedded")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// IsAvailable reports whether Load would find name.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(strings.TrimSpace(name)))
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
