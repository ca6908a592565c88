package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/summary"
)

func (a *App) overlapCmd() *cobra.Command {
	var (
		date    string
		model   string
		insight bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Show the hours the whole team shares",
		Long: `List the reference hours in which every member is available, and the
hours where only part of the team is.

With --insight, the configured LLM suggests the best meeting hours and who
would be working outside 08:00-20:00 local time.`,
		Example: `  tzbuddy overlap
  tzbuddy overlap --date=next-monday --insight`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			browsing, err := a.browsingInstant(date, "12:00")
			if err != nil {
				return err
			}

			opts := summary.Options{
				Date:              browsing,
				ReferenceTimezone: a.config.Browsing.Timezone,
				Resolver:          a.resolver,
			}
			if insight {
				if model == "" {
					model = a.config.LLM.Model
				}
				client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
				if err != nil {
					return fmt.Errorf("creating LLM client: %w", err)
				}
				opts.IncludeInsight = true
				opts.Insighter = llm.NewInsighter(client)
			}

			day, err := summary.BuildTeamDay(cmd.Context(), a.repo, opts)
			if err != nil {
				return fmt.Errorf("building team day: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n  %s\n", formatHeader(fmt.Sprintf("OVERLAP: %s", dialTitle(day.Date, day.Reference))))
			fmt.Fprintln(out, strings.Repeat("─", 74))
			PrintOverlap(out, day)

			if day.Insight != nil {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "  %s\n", formatHeader("INSIGHT"))
				fmt.Fprintln(out, strings.Repeat("─", 74))
				PrintInsightWrapped(out, day.Insight.String(), 72)
			}

			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Day to check (YYYY-MM-DD, tomorrow, next-friday, ...)")
	cmd.Flags().StringVar(&model, "model", "", "LLM model to use (default from config)")
	cmd.Flags().BoolVar(&insight, "insight", false, "Ask the LLM for an insight")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
