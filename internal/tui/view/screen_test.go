package view

import (
	"strings"
	"testing"
)

type stubOverlay struct{}

func (stubOverlay) Render(base string, _, _ int, content string) string {
	return base + "|" + content
}

func TestRenderScreen(t *testing.T) {
	if got := RenderScreen(Screen{}); got != "Loading..." {
		t.Errorf("zero-size screen = %q", got)
	}

	s := Screen{Width: 10, Height: 4, Header: "head", Grid: "grid", Footer: "foot"}
	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "head") || !strings.HasPrefix(lines[2], "foot") {
		t.Errorf("sections out of order: %q", lines)
	}

	s.TooSmall = true
	if got := RenderScreen(s); got != "Terminal too small" {
		t.Errorf("too-small screen = %q", got)
	}
}

func TestRenderScreenOverlaysModal(t *testing.T) {
	s := Screen{Width: 10, Height: 1, TooSmall: true, Modal: "box", Overlay: stubOverlay{}}
	if got := RenderScreen(s); got != "Terminal too small|box" {
		t.Errorf("RenderScreen = %q", got)
	}

	s.Modal = ""
	if got := RenderScreen(s); strings.Contains(got, "|") {
		t.Errorf("overlay drawn without a modal: %q", got)
	}
}
