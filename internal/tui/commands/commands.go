// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tzbuddy/internal/config"
	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// TeamLoadedMsg is sent when the team dials for a browsing instant are built.
type TeamLoadedMsg struct {
	Day      *summary.TeamDay
	Browsing time.Time
}

// ErrMsg is sent when an error occurs. Browsing is set when the error
// belongs to loading a particular browsing instant.
type ErrMsg struct {
	Err      error
	Browsing time.Time
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// InsightStartedMsg is sent when an insight request starts.
type InsightStartedMsg struct{}

// InsightMsg is sent when the insight for a day is ready.
type InsightMsg struct {
	Day      *summary.TeamDay
	Browsing time.Time
}

// InsightErrMsg is sent when an insight request fails.
type InsightErrMsg struct {
	Err      error
	Browsing time.Time
}

// LoadRequest identifies the team view to build.
type LoadRequest struct {
	Browsing  time.Time
	Reference string
	Resolver  *tzinfo.Resolver
}

func (r LoadRequest) options() summary.Options {
	return summary.Options{
		Date:              r.Browsing,
		ReferenceTimezone: r.Reference,
		Resolver:          r.Resolver,
	}
}

// LoadTeam builds every member's dial for the browsing instant.
func LoadTeam(repo team.Repository, req LoadRequest) tea.Cmd {
	return func() tea.Msg {
		day, err := summary.BuildTeamDay(context.Background(), repo, req.options())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading team: %w", err), Browsing: req.Browsing}
		}
		return TeamLoadedMsg{Day: day, Browsing: req.Browsing}
	}
}

// Insight asks the configured LLM provider to describe the team day.
func Insight(cfg *config.Config, repo team.Repository, req LoadRequest) tea.Cmd {
	return func() tea.Msg {
		client, err := llm.NewClient(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.BaseURL)
		if err != nil {
			return InsightErrMsg{Err: fmt.Errorf("creating LLM client: %w", err), Browsing: req.Browsing}
		}
		return InsightWith(llm.NewInsighter(client), repo, req)()
	}
}

// InsightWith builds the team day and its insight using insighter.
func InsightWith(insighter *llm.Insighter, repo team.Repository, req LoadRequest) tea.Cmd {
	return func() tea.Msg {
		opts := req.options()
		opts.IncludeInsight = true
		opts.Insighter = insighter

		day, err := summary.BuildTeamDay(context.Background(), repo, opts)
		if err != nil {
			return InsightErrMsg{Err: fmt.Errorf("insight: %w", err), Browsing: req.Browsing}
		}
		return InsightMsg{Day: day, Browsing: req.Browsing}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
