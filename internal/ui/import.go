package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/tzbuddy/internal/dateutil"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// RosterFile is the YAML layout accepted by `tzbuddy import`.
//
//	members:
//	  - name: Ada
//	    timezone: Europe/London
//	    availability:
//	      - date: 2025-01-13
//	        start: "09:00"
//	        end: "17:00"
//	        days: 5
type RosterFile struct {
	Members []RosterMember `yaml:"members"`
}

// RosterMember is one member entry of a roster file.
type RosterMember struct {
	Name         string         `yaml:"name"`
	Timezone     string         `yaml:"timezone"`
	Availability []RosterWindow `yaml:"availability"`
}

// RosterWindow is a window repeated on Days consecutive days from Date.
type RosterWindow struct {
	Date  string `yaml:"date"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Days  int    `yaml:"days"`
}

// ImportResult counts what an import created.
type ImportResult struct {
	MembersCreated int
	MembersReused  int
	Windows        int
}

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import team members and availability from YAML",
		Long: `Import a team roster. Existing members are matched by name and keep
their timezone; new members are created.

Example:
  tzbuddy import team.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening roster: %w", err)
			}
			defer func() { _ = f.Close() }()

			roster, err := parseRoster(f)
			if err != nil {
				return err
			}

			res, err := importRoster(cmd.Context(), a.repo, a.resolver, roster)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new members (%d existing) and %d availability windows from %s\n",
				res.MembersCreated, res.MembersReused, res.Windows, path)
			return nil
		},
	}

	return cmd
}

// parseRoster decodes a roster, rejecting unknown fields.
func parseRoster(r io.Reader) (*RosterFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var roster RosterFile
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("roster is empty")
		}
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if len(roster.Members) == 0 {
		return nil, fmt.Errorf("roster has no members")
	}
	return &roster, nil
}

// importRoster validates every entry, then writes the roster in one batch.
// A roster that fails anywhere leaves the repository untouched.
func importRoster(ctx context.Context, repo team.Repository, resolver *tzinfo.Resolver, roster *RosterFile) (ImportResult, error) {
	var res ImportResult
	batch := make([]team.MemberBatch, 0, len(roster.Members))
	entries := make(map[string]int, len(roster.Members))
	for i, rm := range roster.Members {
		name := strings.TrimSpace(rm.Name)
		key := strings.ToLower(name)
		if first, ok := entries[key]; ok && name != "" {
			return res, fmt.Errorf("member %d: %w: %q repeats member %d", i+1, team.ErrDuplicateMember, name, first)
		}
		entries[key] = i + 1

		existing, err := repo.GetMemberByName(ctx, name)
		if err != nil && !errors.Is(err, team.ErrMemberNotFound) {
			return res, fmt.Errorf("looking up member %q: %w", rm.Name, err)
		}

		m := existing
		if m == nil {
			if m, err = team.NewMember(rm.Name, rm.Timezone, resolver); err != nil {
				return res, fmt.Errorf("member %d: %w", i+1, err)
			}
		}
		loc, ok := resolver.Location(m.Timezone)
		if !ok {
			return res, fmt.Errorf("member %q: %w: %q", m.Name, team.ErrUnknownTimezone, m.Timezone)
		}

		b := team.MemberBatch{Member: m}
		for j, w := range rm.Availability {
			first, err := dateutil.ParseDate(w.Date, loc)
			if err != nil {
				return res, fmt.Errorf("member %q window %d: %w", m.Name, j+1, err)
			}
			for d := 0; d < max(1, w.Days); d++ {
				day := first.AddDate(0, 0, d).Format("2006-01-02")
				a, err := team.NewAvailability(0, day, w.Start, w.End, loc)
				if err != nil {
					return res, fmt.Errorf("member %q window %d: %w", m.Name, j+1, err)
				}
				b.Windows = append(b.Windows, a)
			}
		}
		batch = append(batch, b)
	}

	var created ImportResult
	for _, b := range batch {
		if b.Member.ID == 0 {
			created.MembersCreated++
		} else {
			created.MembersReused++
		}
		created.Windows += len(b.Windows)
	}

	if err := repo.ImportMembers(ctx, batch); err != nil {
		return res, fmt.Errorf("importing roster: %w", err)
	}
	return created, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
