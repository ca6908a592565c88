package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tzbuddy/internal/dateutil"
	"github.com/javiermolinar/tzbuddy/internal/team"
)

func (a *App) availCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avail",
		Short: "Manage member availability",
	}
	cmd.AddCommand(a.availAddCmd(), a.availListCmd(), a.availClearCmd())
	return cmd
}

func (a *App) availAddCmd() *cobra.Command {
	var (
		date  string
		start string
		end   string
		days  int
	)

	cmd := &cobra.Command{
		Use:   "add [member]",
		Short: "Add an availability window in the member's timezone",
		Long: `Add a window in which a member can be reached. Times are in the
member's own timezone. An end of 24:00 means the following midnight.

Example:
  tzbuddy avail add Ada --start=09:00 --end=17:00
  tzbuddy avail add Ada --date=next-monday --start=09:00 --end=13:00 --days=5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			ctx := cmd.Context()
			m, err := a.lookupMember(ctx, args[0])
			if err != nil {
				return err
			}
			loc, ok := a.resolver.Location(m.Timezone)
			if !ok {
				return fmt.Errorf("%w: %q", team.ErrUnknownTimezone, m.Timezone)
			}

			first, err := dateutil.ParseBrowsingDate(date, time.Now().In(loc))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < days; i++ {
				day := first.AddDate(0, 0, i).Format("2006-01-02")
				w, err := team.NewAvailability(m.ID, day, start, end, loc)
				if err != nil {
					return err
				}
				if err := a.repo.AddAvailability(ctx, w); err != nil {
					return fmt.Errorf("adding availability: %w", err)
				}
				fmt.Fprintf(out, "Added %s %s\n", m.Name, formatWindow(w))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "First day (YYYY-MM-DD, today, tomorrow, next-monday, ...)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM or 24:00, required)")
	cmd.Flags().IntVar(&days, "days", 1, "Repeat on this many consecutive days")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) availListCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "list [member]",
		Short: "List a member's availability",
		Example: `  tzbuddy avail list Ada
  tzbuddy avail list Ada --from=2025-01-13 --to=2025-01-19`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := cmd.Context()
			m, err := a.lookupMember(ctx, args[0])
			if err != nil {
				return err
			}
			loc, ok := a.resolver.Location(m.Timezone)
			if !ok {
				return fmt.Errorf("%w: %q", team.ErrUnknownTimezone, m.Timezone)
			}

			today := time.Now().In(loc)
			fromDay, err := dateutil.ParseBrowsingDate(from, today)
			if err != nil {
				return err
			}
			var toDay time.Time
			if to == "" {
				fromDay, toDay = dateutil.WeekRange(fromDay)
			} else if toDay, err = dateutil.ParseBrowsingDate(to, today); err != nil {
				return err
			}
			if toDay.Before(fromDay) {
				return fmt.Errorf("--to must not be before --from")
			}

			windows, err := a.repo.ListAvailability(ctx, m.ID, fromDay, toDay.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("listing availability: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s) %s to %s\n", formatHeader(m.Name), m.Timezone,
				fromDay.Format("2006-01-02"), toDay.Format("2006-01-02"))
			if len(windows) == 0 {
				fmt.Fprintln(out, formatMuted("  No availability in this range."))
				return nil
			}
			for _, w := range windows {
				fmt.Fprintf(out, "  %s\n", formatWindow(w))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "today", "First day")
	cmd.Flags().StringVar(&to, "to", "", "Last day (default: the whole week containing --from)")

	return cmd
}

func (a *App) availClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [member]",
		Short: "Remove all of a member's availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := cmd.Context()
			m, err := a.lookupMember(ctx, args[0])
			if err != nil {
				return err
			}
			n, err := a.repo.ClearAvailability(ctx, m.ID)
			if err != nil {
				return fmt.Errorf("clearing availability: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d windows for %s\n", n, m.Name)
			return nil
		},
	}
}

// formatWindow prints a window in its own zone, e.g. "Mon 2025-01-13 09:00-17:00".
func formatWindow(w *team.Availability) string {
	end := w.End.Format("15:04")
	if !sameDate(w.Start, w.End) {
		if w.End.Format("15:04") == "00:00" && sameDate(w.Start, w.End.Add(-time.Minute)) {
			end = "24:00"
		} else {
			end = w.End.Format("Mon 15:04")
		}
	}
	return fmt.Sprintf("%s %s-%s", w.Start.Format("Mon 2006-01-02"), w.Start.Format("15:04"), end)
}

func sameDate(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
