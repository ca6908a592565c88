package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tzbuddy/internal/config"
	"github.com/javiermolinar/tzbuddy/internal/dateutil"
	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tui/view"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

func (a *App) dialCmd() *cobra.Command {
	var (
		date    string
		at      string
		zones   []string
		noTeam  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "dial",
		Short: "Print everyone's hours for a day",
		Long: `Print one hour strip per team member, aligned to your reference
timezone. Available hours are highlighted and the browsing hour is marked.

Use --tz to add timezones that are not on the team.`,
		Example: `  tzbuddy dial
  tzbuddy dial --date=tomorrow --at=15:00
  tzbuddy dial --no-team --tz=Asia/Tokyo --tz=America/Los_Angeles`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			browsing, err := a.browsingInstant(date, at)
			if err != nil {
				return err
			}

			refInfo, refLoc, ok := a.resolver.Lookup(a.config.Browsing.Timezone, browsing)
			if !ok {
				return fmt.Errorf("unknown reference timezone %q", a.config.Browsing.Timezone)
			}
			browsing = browsing.In(refLoc)

			rows := []*summary.MemberDay{adHocDay("You", refInfo, refLoc, browsing, refLoc)}
			var day *summary.TeamDay
			if !noTeam {
				if err := a.ensureRepo(); err != nil {
					return err
				}
				day, err = summary.BuildTeamDay(cmd.Context(), a.repo, summary.Options{
					Date:              browsing,
					ReferenceTimezone: a.config.Browsing.Timezone,
					Resolver:          a.resolver,
				})
				if err != nil {
					return fmt.Errorf("building team day: %w", err)
				}
				rows = append(rows, day.Members...)
			}
			for _, z := range zones {
				info, loc, ok := a.resolver.Lookup(z, browsing)
				if !ok {
					return fmt.Errorf("unknown timezone %q", z)
				}
				rows = append(rows, adHocDay(info.Name, info, loc, browsing, refLoc))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n\n", formatHeader(dialTitle(browsing, refInfo)), formatMuted(browsing.Format("15:04")))
			printDial(out, rows, browsing, a.config)
			if day != nil {
				fmt.Fprintln(out)
				PrintOverlap(out, day)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Day to show (YYYY-MM-DD, tomorrow, next-friday, ...)")
	cmd.Flags().StringVar(&at, "at", "", "Browsing time in the reference zone (HH:MM, default: now)")
	cmd.Flags().StringArrayVar(&zones, "tz", nil, "Extra timezone to show (repeatable)")
	cmd.Flags().BoolVar(&noTeam, "no-team", false, "Skip team members")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// browsingInstant resolves --date and --at in the reference zone.
func (a *App) browsingInstant(date, at string) (time.Time, error) {
	loc, ok := a.resolver.Location(a.config.Browsing.Timezone)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown reference timezone %q", a.config.Browsing.Timezone)
	}
	now := time.Now().In(loc)

	day, err := dateutil.ParseBrowsingDate(date, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date: %w", err)
	}

	minutes := now.Hour()*60 + now.Minute()
	if at != "" {
		if minutes, err = dateutil.ParseClock(at); err != nil {
			return time.Time{}, fmt.Errorf("--at: %w", err)
		}
	}
	return dateutil.AtClock(day, minutes), nil
}

// adHocDay builds a dial row for a zone that is not on the team.
func adHocDay(name string, info dial.TimezoneInfo, loc *time.Location, browsing time.Time, refLoc *time.Location) *summary.MemberDay {
	offset := tzinfo.UTCOffsetMinutes(browsing, loc) - tzinfo.UTCOffsetMinutes(browsing, refLoc)
	return &summary.MemberDay{
		Member:   &team.Member{Name: name, Timezone: loc.String()},
		Info:     info,
		Location: loc,
		Offset:   tzinfo.FormatOffset(offset),
		Window:   dial.Build(browsing, loc, refLoc),
	}
}

func dialTitle(browsing time.Time, ref dial.TimezoneInfo) string {
	zone := ref.Name
	if ref.Abbreviation != "" && ref.Abbreviation != ref.Name {
		zone += " (" + ref.Abbreviation + ")"
	}
	return browsing.Format("Mon Jan 2, 2006") + "  " + zone
}

func printDial(out io.Writer, days []*summary.MemberDay, browsing time.Time, cfg *config.Config) {
	rows := make([]DialRow, 0, len(days))
	for _, md := range days {
		rows = append(rows, DialRow{Name: md.Member.Name, Zone: md.ZoneLabel()})
	}

	opts := StripOpts{}
	for _, r := range rows {
		opts.NameWidth = max(opts.NameWidth, runewidth.StringWidth(r.Name))
		opts.ZoneWidth = max(opts.ZoneWidth, runewidth.StringWidth(r.Zone))
	}
	opts.NameWidth = min(opts.NameWidth, 16)
	opts.CellWidth = fitCellWidth(cfg.Dial.CellWidth, opts.NameWidth+opts.ZoneWidth+4, termWidth())

	stripOpts := view.StripOptions{
		Clock:     dial.ParseClock(cfg.Dial.Clock),
		CellWidth: opts.CellWidth,
		DimNight:  cfg.Dial.DimNight,
		Current:   browsing,
	}
	for i, md := range days {
		rows[i].Cells = view.BuildStrip(md.Window, md.Available, stripOpts)
	}
	PrintDialRows(out, rows, opts)
}

// fitCellWidth shrinks cells so a 25-cell strip fits the terminal, never
// below the configured minimum.
func fitCellWidth(configured, chrome, width int) int {
	const maxCells = 25
	fit := (width - chrome) / maxCells
	return max(config.MinCellWidth, min(configured, fit))
}
