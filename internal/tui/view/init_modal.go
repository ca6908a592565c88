package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InitModalModel describes what first-run setup will create.
type InitModalModel struct {
	ConfigPath    string
	DBPath        string
	ConfigMissing bool
	DBMissing     bool
	ErrorMessage  string
}

// InitModalStyles groups the styles used by the init modal body.
type InitModalStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderInitBody renders the body of the first-run modal.
func RenderInitBody(model InitModalModel, styles InitModalStyles) string {
	var b strings.Builder
	b.WriteString(styles.BodyStyle.Render("Tzbuddy needs a config file and a team database."))
	b.WriteString("\n\n")

	b.WriteString(initPathLine("Config", model.ConfigPath, model.ConfigMissing, styles))
	b.WriteString("\n")
	b.WriteString(initPathLine("Database", model.DBPath, model.DBMissing, styles))

	if model.ErrorMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.HintStyle.Render("Error: " + model.ErrorMessage))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render("Add teammates afterwards with `tzbuddy member add`."))
	return b.String()
}

func initPathLine(label, path string, missing bool, styles InitModalStyles) string {
	status := "exists"
	if missing {
		status = "will be created"
	}
	if path == "" {
		path = "(unset)"
	}
	return styles.LabelStyle.Render(label+": ") +
		styles.BodyStyle.Render(path) +
		styles.HintStyle.Render(" ("+status+")")
}
