package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

const sampleRoster = `
members:
  - name: Ada
    timezone: Europe/London
    availability:
      - date: "2024-01-15"
        start: "09:00"
        end: "17:00"
        days: 5
  - name: Grace
    timezone: America/New_York
    availability:
      - date: "2024-01-15"
        start: "10:00"
        end: "24:00"
`

func TestParseRoster(t *testing.T) {
	roster, err := parseRoster(strings.NewReader(sampleRoster))
	if err != nil {
		t.Fatalf("parseRoster failed: %v", err)
	}
	if len(roster.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(roster.Members))
	}
	ada := roster.Members[0]
	if ada.Name != "Ada" || ada.Timezone != "Europe/London" {
		t.Errorf("unexpected first member %+v", ada)
	}
	if len(ada.Availability) != 1 || ada.Availability[0].Days != 5 {
		t.Errorf("unexpected availability %+v", ada.Availability)
	}
}

func TestParseRoster_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "roster is empty"},
		{name: "no members", input: "members: []\n", wantErr: "roster has no members"},
		{name: "unknown field", input: "members:\n  - name: Ada\n    tz: UTC\n", wantErr: "parsing roster"},
		{name: "bad yaml", input: "members: [\n", wantErr: "parsing roster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRoster(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("parseRoster error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestImportRoster(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	resolver := tzinfo.NewResolver(time.UTC)

	roster, err := parseRoster(strings.NewReader(sampleRoster))
	if err != nil {
		t.Fatalf("parseRoster failed: %v", err)
	}

	res, err := importRoster(ctx, env.repo, resolver, roster)
	if err != nil {
		t.Fatalf("importRoster failed: %v", err)
	}
	if res.MembersCreated != 2 || res.MembersReused != 0 || res.Windows != 6 {
		t.Errorf("unexpected result %+v", res)
	}

	grace, err := env.repo.GetMemberByName(ctx, "Grace")
	if err != nil {
		t.Fatalf("GetMemberByName failed: %v", err)
	}
	ny, _ := time.LoadLocation("America/New_York")
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, ny)
	windows, err := env.repo.ListAvailability(ctx, grace.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListAvailability failed: %v", err)
	}
	if len(windows) != 1 || !windows[0].End.Equal(day.AddDate(0, 0, 1)) {
		t.Errorf("expected one window ending at midnight, got %+v", windows)
	}

	// A second import reuses members by name.
	res, err = importRoster(ctx, env.repo, resolver, roster)
	if err != nil {
		t.Fatalf("second importRoster failed: %v", err)
	}
	if res.MembersCreated != 0 || res.MembersReused != 2 {
		t.Errorf("unexpected second result %+v", res)
	}
	members, err := env.repo.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 members after reimport, got %d", len(members))
	}
}

func TestImportRoster_InvalidEntryWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	roster := &RosterFile{Members: []RosterMember{
		{Name: "Ada", Timezone: "UTC", Availability: []RosterWindow{{Date: "2024-01-15", Start: "09:00", End: "17:00"}}},
		{Name: "Grace", Timezone: "America/New_York", Availability: []RosterWindow{{Date: "2024-01-15", Start: "17:00", End: "09:00"}}},
	}}

	_, err := importRoster(ctx, env.repo, tzinfo.NewResolver(time.UTC), roster)
	if !errors.Is(err, team.ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got %v", err)
	}

	members, err := env.repo.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected nothing written, got %d members", len(members))
	}
}

func TestImportRoster_RepeatedNameWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	roster := &RosterFile{Members: []RosterMember{
		{Name: "Ada", Timezone: "UTC"},
		{Name: "ada", Timezone: "UTC"},
	}}

	_, err := importRoster(ctx, env.repo, tzinfo.NewResolver(time.UTC), roster)
	if !errors.Is(err, team.ErrDuplicateMember) {
		t.Fatalf("expected ErrDuplicateMember, got %v", err)
	}
	if !strings.Contains(err.Error(), "member 2") {
		t.Errorf("error %q should name the repeated entry", err)
	}

	members, err := env.repo.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected nothing written, got %d members", len(members))
	}
}

func TestImportRoster_UnknownTimezone(t *testing.T) {
	env := newTestEnv(t)

	roster := &RosterFile{Members: []RosterMember{{Name: "Ken", Timezone: "Moon/Base"}}}
	_, err := importRoster(context.Background(), env.repo, tzinfo.NewResolver(time.UTC), roster)
	if !errors.Is(err, team.ErrUnknownTimezone) {
		t.Errorf("expected ErrUnknownTimezone, got %v", err)
	}
}

func TestImportCmd(t *testing.T) {
	env := newTestEnv(t)

	path := filepath.Join(t.TempDir(), "team.yaml")
	if err := os.WriteFile(path, []byte(sampleRoster), 0o644); err != nil {
		t.Fatalf("writing roster: %v", err)
	}

	out := env.mustRun(t, "import", path)
	if !strings.Contains(out, "Imported 2 new members (0 existing) and 6 availability windows") {
		t.Errorf("import output = %q", out)
	}

	if _, err := env.run(t, "import", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing roster file")
	}
}

func TestResolvePath(t *testing.T) {
	if _, err := resolvePath("  "); err == nil {
		t.Error("expected error for empty path")
	}

	got, err := resolvePath("team.yaml")
	if err != nil {
		t.Fatalf("resolvePath failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolvePath(team.yaml) = %q, want absolute path", got)
	}
}
