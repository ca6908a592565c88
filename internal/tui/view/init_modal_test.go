package view

import (
	"strings"
	"testing"
)

func TestRenderInitBody(t *testing.T) {
	body := RenderInitBody(InitModalModel{
		ConfigPath:    "/home/ada/.config/tzbuddy/config.toml",
		DBPath:        "/home/ada/.local/share/tzbuddy/tzbuddy.db",
		ConfigMissing: true,
	}, InitModalStyles{})

	for _, want := range []string{
		"Config: /home/ada/.config/tzbuddy/config.toml (will be created)",
		"Database: /home/ada/.local/share/tzbuddy/tzbuddy.db (exists)",
		"tzbuddy member add",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Error:") {
		t.Errorf("unexpected error line:\n%s", body)
	}
}

func TestRenderInitBodyShowsError(t *testing.T) {
	body := RenderInitBody(InitModalModel{ErrorMessage: "permission denied"}, InitModalStyles{})
	if !strings.Contains(body, "Error: permission denied") {
		t.Errorf("expected error line:\n%s", body)
	}
	if !strings.Contains(body, "Config: (unset)") {
		t.Errorf("expected unset placeholder:\n%s", body)
	}
}
