package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tzbuddy/internal/team"
)

func (a *App) memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage team members",
	}
	cmd.AddCommand(a.memberAddCmd(), a.memberListCmd(), a.memberRemoveCmd())
	return cmd
}

func (a *App) memberAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [timezone]",
		Short: "Add a team member",
		Long: `Add a team member with an IANA timezone.

Example:
  tzbuddy member add Ada Europe/London
  tzbuddy member add "Grace Hopper" America/New_York`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			m, err := team.NewMember(args[0], args[1], a.resolver)
			if err != nil {
				return err
			}
			if err := a.repo.CreateMember(cmd.Context(), m); err != nil {
				return fmt.Errorf("adding member: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", m.Name, m.Timezone)
			return nil
		},
	}
}

func (a *App) memberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			members, err := a.repo.ListMembers(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing members: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintln(out, "No members yet. Add one with `tzbuddy member add <name> <timezone>`.")
				return nil
			}
			for _, m := range members {
				zone := m.Timezone
				if !a.resolver.Valid(zone) {
					zone = formatWarning(zone + " (unknown)")
				}
				fmt.Fprintf(out, "  %-20s %s\n", m.Name, zone)
			}
			return nil
		},
	}
}

func (a *App) memberRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Remove a team member and their availability",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := cmd.Context()
			m, err := a.lookupMember(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.repo.DeleteMember(ctx, m.ID); err != nil {
				return fmt.Errorf("removing member: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", m.Name)
			return nil
		},
	}
}

// lookupMember finds a member by name with a friendly error.
func (a *App) lookupMember(ctx context.Context, name string) (*team.Member, error) {
	m, err := a.repo.GetMemberByName(ctx, name)
	if errors.Is(err, team.ErrMemberNotFound) {
		return nil, fmt.Errorf("no member named %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up member: %w", err)
	}
	return m, nil
}
